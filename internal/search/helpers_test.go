// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/billquery/pkg/types"
)

// --- fake fetchers ---

type fakeCity struct {
	matters map[string][]CityMatter
	err     error
	calls   []string
}

func (f *fakeCity) FetchCity(_ context.Context, keyword string) ([]CityMatter, error) {
	f.calls = append(f.calls, keyword)
	if f.err != nil {
		return nil, f.err
	}
	return f.matters[keyword], nil
}

type fakeState struct {
	responses map[string]StateSearchResponse // keyed by keyword + "/" + year
	failOn    string
	calls     []string
}

func (f *fakeState) FetchState(_ context.Context, keyword, year string) (StateSearchResponse, error) {
	key := keyword + "/" + year
	f.calls = append(f.calls, key)
	if key == f.failOn {
		return StateSearchResponse{}, fmt.Errorf("connection reset")
	}
	if resp, ok := f.responses[key]; ok {
		return resp, nil
	}
	return stateResp(), nil
}

func strp(s string) *string { return &s }

func matter(file, title string) CityMatter {
	return CityMatter{MatterFile: strp(file), MatterTitle: strp(title)}
}

// stateResp builds a search response from identifier/title pairs.
func stateResp(pairs ...[2]string) StateSearchResponse {
	ok := true
	res := &StateResult{}
	for _, p := range pairs {
		res.Items = append(res.Items, StateItem{Result: &StateBill{BasePrintNo: strp(p[0]), Title: strp(p[1])}})
	}
	res.Size = len(res.Items)
	return StateSearchResponse{Success: &ok, Total: res.Size, Result: res}
}

func bills(pairs ...[2]string) []types.Bill {
	out := make([]types.Bill, len(pairs))
	for i, p := range pairs {
		out[i] = types.Bill{Identifier: p[0], Title: p[1]}
	}
	return out
}

func testConfig(format types.OutputFormat, keywords []string, ignore ...string) types.QueryConfig {
	return types.QueryConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 10 * time.Second, UserAgent: "test/0.1"},
		City:       types.CityConfig{AgendaFrom: CityAgendaFrom, AgendaTo: CityAgendaTo},
		State:      types.StateConfig{Years: StateYears},
		Format:     format,
		Keywords:   keywords,
		Ignore:     types.NewIgnoreSet(ignore),
	}
}
