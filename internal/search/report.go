// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/billquery/internal/output"
	"github.com/pdiddy/billquery/pkg/types"
)

// ExtractIdentifier returns the dedup key of a rendered line: the first
// whitespace token once commas are read as spaces. Legistar resolutions and
// introductions print as "Res 205" or "Int 1234-2018", so for those the
// number after the marker is the key.
func ExtractIdentifier(line string) string {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) == 0 {
		return ""
	}
	if (fields[0] == "Res" || fields[0] == "Int") && len(fields) > 1 {
		return fields[1]
	}
	return fields[0]
}

// Report sorts bills by their rendered line and drops ignored bills and
// bills whose key equals the key of the line just before them. Only
// neighbours are compared, so equal keys that do not sort next to each other
// are all kept. The input slice is not modified.
func Report(bills []types.Bill, ignore types.IgnoreSet, format types.OutputFormat) []types.Bill {
	type line struct {
		bill types.Bill
		text string
	}
	lines := make([]line, len(bills))
	for i, b := range bills {
		lines[i] = line{bill: b, text: b.Line(format)}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].text < lines[j].text })

	var kept []types.Bill
	prev := ""
	for _, l := range lines {
		id := ExtractIdentifier(l.text)
		if id != prev && !ignore.Contains(id) {
			kept = append(kept, l.bill)
		}
		prev = id
	}
	return kept
}

// WriteReport renders bills to w, one line each, or as a table in table format.
func WriteReport(w io.Writer, bills []types.Bill, format types.OutputFormat) error {
	if format == types.FormatTable {
		t := output.NewTable(w, []string{"Identifier", "Title"})
		for _, b := range bills {
			t.AddRow([]string{b.Identifier, b.Title})
		}
		return t.Render()
	}

	for _, b := range bills {
		if _, err := fmt.Fprintln(w, b.Line(format)); err != nil {
			return err
		}
	}
	return nil
}
