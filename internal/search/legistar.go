// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/billquery/internal/httputil"
)

// legistarBase is the New York City Council Legistar Web API root. Declared
// as a var so tests can substitute an httptest server.
var legistarBase = "https://webapi.legistar.com/v1/nyc"

const citySource = "nyc-council"

// CityFetcher returns the raw city matters whose title contains keyword.
type CityFetcher interface {
	FetchCity(ctx context.Context, keyword string) ([]CityMatter, error)
}

// CityMatter is one Legistar matter. Pointer fields are required; a nil
// value means the API omitted them.
type CityMatter struct {
	MatterID         int     `json:"MatterId"`
	MatterFile       *string `json:"MatterFile"`
	MatterName       string  `json:"MatterName"`
	MatterTitle      *string `json:"MatterTitle"`
	MatterTypeName   string  `json:"MatterTypeName"`
	MatterStatusName string  `json:"MatterStatusName"`
	MatterAgendaDate string  `json:"MatterAgendaDate"`
}

// LegistarClient queries the Legistar matters endpoint. The query is always
// bounded by the agenda date window [AgendaFrom, AgendaTo).
type LegistarClient struct {
	Client     *http.Client
	Token      string
	UserAgent  string
	AgendaFrom time.Time
	AgendaTo   time.Time
}

// FetchCity issues one matters request for keyword.
func (c *LegistarClient) FetchCity(ctx context.Context, keyword string) ([]CityMatter, error) {
	params := url.Values{
		"token":   {c.Token},
		"$filter": {legistarFilter(keyword, c.AgendaFrom, c.AgendaTo)},
	}
	reqURL := legistarBase + "/matters?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	var matters []CityMatter
	if err := httputil.GetJSON(ctx, c.Client, req, citySource, &matters); err != nil {
		return nil, err
	}
	return matters, nil
}

// legistarFilter builds the OData $filter: a case-insensitive title
// substring match inside the agenda date window.
func legistarFilter(keyword string, from, to time.Time) string {
	return fmt.Sprintf(
		"substringof('%s', MatterTitle) eq true and MatterAgendaDate ge datetime'%s' and MatterAgendaDate lt datetime'%s'",
		odataEscape(keyword), from.Format(dateFmt), to.Format(dateFmt),
	)
}

// odataEscape doubles single quotes, the OData string literal escape.
func odataEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
