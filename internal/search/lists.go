// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const dateFmt = "2006-01-02"

// DefaultKeywords are the technology terms searched when none are configured.
var DefaultKeywords = []string{
	"software", "data", "algorithm", "blockchain", "block-chain", "block chain",
	"cryptography", "camera", "web", "wifi", "broadband", "internet",
	"computer", "cyber", "tech", "technology",
}

// DefaultIgnore lists bills that match the default keywords but are not
// about technology.
var DefaultIgnore = []string{
	"A10165", "T2018-1413", "T2017-5911", "0988-2018", "T2017-5912",
	"T2017-5976", "T2017-6070", "T2018-1901", "T2018-1904", "T2018-1414",
	"T2017-5603", "T2017-5602", "T2019-3797", "T2019-3799", "T2017-6079",
}

// Fixed search windows. The state source is searched per session year; the
// city source filters on agenda date instead.
var (
	StateYears     = []string{"2018", "2019"}
	CityAgendaFrom = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	CityAgendaTo   = time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC)
)

// ReadListFile loads a keyword or ignore list. The file is either a YAML
// sequence of strings or plain text with one entry per line; blank lines and
// lines starting with '#' are skipped.
func ReadListFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading list file: %w", err)
	}

	var seq []string
	if err := yaml.Unmarshal(data, &seq); err == nil && len(seq) > 0 {
		return cleanList(seq), nil
	}

	var entries []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parsing list file %s: %w", path, err)
	}
	return entries, nil
}

// ResolveList returns the first non-empty list, in priority order.
func ResolveList(lists ...[]string) []string {
	for _, l := range lists {
		if l = cleanList(l); len(l) > 0 {
			return l
		}
	}
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
