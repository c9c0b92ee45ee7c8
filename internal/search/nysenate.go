// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/billquery/internal/httputil"
)

// openLegislationBase is the New York State Senate Open Legislation API root.
// Declared as a var so tests can substitute an httptest server.
var openLegislationBase = "https://legislation.nysenate.gov/api/3"

const stateSource = "nys-senate"

// StateFetcher returns the raw bill search response for keyword in one
// session year.
type StateFetcher interface {
	FetchState(ctx context.Context, keyword, year string) (StateSearchResponse, error)
}

// StateSearchResponse is the Open Legislation search envelope.
type StateSearchResponse struct {
	Success      *bool        `json:"success"`
	Message      string       `json:"message"`
	ResponseType string       `json:"responseType"`
	Total        int          `json:"total"`
	Result       *StateResult `json:"result"`
}

// StateResult wraps the list of matches.
type StateResult struct {
	Items []StateItem `json:"items"`
	Size  int         `json:"size"`
}

// StateItem is one ranked match.
type StateItem struct {
	Result *StateBill `json:"result"`
	Rank   float64    `json:"rank"`
}

// StateBill carries the bill fields billquery reads. Pointer fields are required.
type StateBill struct {
	BasePrintNo *string `json:"basePrintNo"`
	PrintNo     string  `json:"printNo"`
	Session     int     `json:"session"`
	Title       *string `json:"title"`
	Summary     string  `json:"summary"`
}

// OpenLegislationClient queries the Open Legislation bill search endpoint.
type OpenLegislationClient struct {
	Client    *http.Client
	Key       string
	UserAgent string
}

// FetchState issues one bill search request for keyword in year.
func (c *OpenLegislationClient) FetchState(ctx context.Context, keyword, year string) (StateSearchResponse, error) {
	params := url.Values{
		"term": {keyword},
		"key":  {c.Key},
	}
	reqURL := openLegislationBase + "/bills/" + url.PathEscape(year) + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return StateSearchResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	var sr StateSearchResponse
	if err := httputil.GetJSON(ctx, c.Client, req, stateSource, &sr); err != nil {
		return StateSearchResponse{}, err
	}
	if sr.Success != nil && !*sr.Success {
		return StateSearchResponse{}, &httputil.FetchError{
			Kind:    httputil.KindStatus,
			Source:  stateSource,
			Message: sr.Message,
		}
	}
	return sr, nil
}
