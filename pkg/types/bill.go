// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the billquery pipeline.
package types

import (
	"fmt"
	"strings"
)

// Bill is one normalized search match from a legislative source.
type Bill struct {
	// Identifier is the bill's printed designation: a Legistar file number
	// (e.g. "Int 0988-2018", "T2018-1413") or a state base print number
	// (e.g. "A10165").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the bill title, already sanitized for the output format.
	Title string `json:"title" yaml:"title"`
}

// Line renders the bill as a single output line. CSV lines join the fields
// with a comma, every other format uses " - ".
func (b Bill) Line(format OutputFormat) string {
	if format == FormatCSV {
		return b.Identifier + "," + b.Title
	}
	return b.Identifier + " - " + b.Title
}

// OutputFormat selects how reports are rendered.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatCSV   OutputFormat = "csv"
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat accepts the CLI spellings of an output format. "txt" is
// kept as an alias of text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use txt, csv, or table", s)
	}
}

// IgnoreSet holds bill identifiers that are dropped from every report.
type IgnoreSet map[string]struct{}

// NewIgnoreSet builds an IgnoreSet from a list of identifiers. Blank entries
// are skipped.
func NewIgnoreSet(ids []string) IgnoreSet {
	set := make(IgnoreSet, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Contains reports whether id is ignored.
func (s IgnoreSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}
