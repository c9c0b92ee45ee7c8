// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP fetch helper shared by the source clients
// and classifies failures into structured error kinds.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindNetwork is a transport failure: dial, TLS, timeout, cancellation.
	KindNetwork Kind = iota + 1
	// KindAuth is a rejected credential (HTTP 401 or 403).
	KindAuth
	// KindStatus is any other HTTP error status or an API failure envelope.
	KindStatus
	// KindMalformed is a response body that cannot be decoded or lacks
	// required fields.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindAuth:
		return "authentication failure"
	case KindStatus:
		return "API error"
	case KindMalformed:
		return "malformed response"
	default:
		return "unknown failure"
	}
}

// maxErrorBody caps how much of an error response body is kept.
const maxErrorBody = 4096

// FetchError describes a failed request to a legislative API.
type FetchError struct {
	Kind       Kind
	Source     string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Source, e.Kind)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first FetchError in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Malformed returns a KindMalformed error for source.
func Malformed(source, format string, args ...any) error {
	return &FetchError{Kind: KindMalformed, Source: source, Message: fmt.Sprintf(format, args...)}
}

// GetJSON executes req once and decodes a successful JSON body into v.
// There are no retries: any failure is returned as a *FetchError.
func GetJSON(ctx context.Context, client *http.Client, req *http.Request, source string, v any) error {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return &FetchError{Kind: KindNetwork, Source: source, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp, source)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &FetchError{Kind: KindMalformed, Source: source, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

// statusError builds a FetchError from an HTTP error response, pulling a
// message out of common JSON error bodies when one is present.
func statusError(resp *http.Response, source string) error {
	kind := KindStatus
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = KindAuth
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return &FetchError{Kind: kind, Source: source, StatusCode: resp.StatusCode,
			Message: fmt.Sprintf("reading error body: %v", err)}
	}

	return &FetchError{Kind: kind, Source: source, StatusCode: resp.StatusCode, Message: errorMessage(body)}
}

func errorMessage(body []byte) string {
	var jsonErr struct {
		Error       string `json:"error"`
		Message     string `json:"message"`
		LegistarMsg string `json:"Message"`
	}
	if json.Unmarshal(body, &jsonErr) == nil {
		for _, m := range []string{jsonErr.Error, jsonErr.Message, jsonErr.LegistarMsg} {
			if m != "" {
				return m
			}
		}
	}
	return strings.TrimSpace(string(body))
}
