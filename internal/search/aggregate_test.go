// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/billquery/pkg/types"
)

func TestCollectOrderAndWindows(t *testing.T) {
	city := &fakeCity{matters: map[string][]CityMatter{
		"data": {matter("T2018-1", "Data one"), matter("T2018-2", "Data two")},
		"web":  {matter("T2018-1", "Data one")},
	}}
	state := &fakeState{responses: map[string]StateSearchResponse{
		"data/2018": stateResp([2]string{"A1", "x"}),
		"data/2019": stateResp([2]string{"A1", "x"}, [2]string{"S2", "y"}),
		"web/2019":  stateResp([2]string{"S3", "z"}),
	}}

	agg := &Aggregator{City: city, State: state, Years: StateYears, Format: types.FormatText}
	got, err := agg.Collect(context.Background(), []string{"data", "web"})
	require.NoError(t, err)

	assert.Equal(t, []string{"data", "web"}, city.calls)
	assert.Equal(t, []string{"data/2018", "data/2019", "web/2018", "web/2019"}, state.calls)

	// Redundant matches survive collection.
	assert.Equal(t, bills(
		[2]string{"T2018-1", "Data one"},
		[2]string{"T2018-2", "Data two"},
		[2]string{"T2018-1", "Data one"},
	), got.City)
	assert.Equal(t, bills(
		[2]string{"A1", "x"},
		[2]string{"A1", "x"},
		[2]string{"S2", "y"},
		[2]string{"S3", "z"},
	), got.State)
}

func TestCollectAbortsOnCityFailure(t *testing.T) {
	city := &fakeCity{err: assert.AnError}
	state := &fakeState{}

	agg := &Aggregator{City: city, State: state, Years: StateYears}
	_, err := agg.Collect(context.Background(), []string{"data", "web"})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), `city search for "data"`)
	assert.Empty(t, state.calls)
}

func TestCollectAbortsOnStateFailure(t *testing.T) {
	city := &fakeCity{}
	state := &fakeState{failOn: "data/2019"}

	agg := &Aggregator{City: city, State: state, Years: StateYears}
	got, err := agg.Collect(context.Background(), []string{"data", "web"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `state search for "data" in 2019`)
	assert.Equal(t, Collected{}, got)
	assert.Equal(t, []string{"data"}, city.calls, "no keyword after the failure is attempted")
}

func TestCollectAbortsOnMalformedItem(t *testing.T) {
	city := &fakeCity{matters: map[string][]CityMatter{"data": {{MatterID: 1}}}}
	agg := &Aggregator{City: city, State: &fakeState{}, Years: StateYears}

	_, err := agg.Collect(context.Background(), []string{"data"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed response")
}
