// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"

	"github.com/pdiddy/billquery/internal/logger"
	"github.com/pdiddy/billquery/pkg/types"
)

// Collected holds the bills gathered from each source. The lists are kept
// apart and are never merged.
type Collected struct {
	City  []types.Bill
	State []types.Bill
}

// Aggregator runs every keyword against both sources, one request at a time.
type Aggregator struct {
	City   CityFetcher
	State  StateFetcher
	Years  []string
	Format types.OutputFormat
	Log    logger.Logger
}

// cityWindow describes the city source's agenda window for logging.
func (a *Aggregator) cityWindow() string {
	if lc, ok := a.City.(*LegistarClient); ok {
		return lc.AgendaFrom.Format(dateFmt) + "/" + lc.AgendaTo.Format(dateFmt)
	}
	return ""
}

// Collect fetches each keyword from the city source once and from the state
// source once per year, appending normalized bills in arrival order. No
// filtering happens here. The first failure aborts the whole collection.
func (a *Aggregator) Collect(ctx context.Context, keywords []string) (Collected, error) {
	log := a.Log
	if log == nil {
		log = logger.NewNop()
	}

	var c Collected
	for _, kw := range keywords {
		matters, err := a.City.FetchCity(ctx, kw)
		if err != nil {
			return Collected{}, fmt.Errorf("city search for %q: %w", kw, err)
		}
		bills, err := NormalizeCity(matters, a.Format)
		if err != nil {
			return Collected{}, fmt.Errorf("city search for %q: %w", kw, err)
		}
		c.City = append(c.City, bills...)
		log.Debug("fetched", logger.String("source", citySource), logger.String("keyword", kw),
			logger.String("window", a.cityWindow()), logger.Int("matches", len(bills)))

		for _, year := range a.Years {
			resp, err := a.State.FetchState(ctx, kw, year)
			if err != nil {
				return Collected{}, fmt.Errorf("state search for %q in %s: %w", kw, year, err)
			}
			bills, err := NormalizeState(resp, a.Format)
			if err != nil {
				return Collected{}, fmt.Errorf("state search for %q in %s: %w", kw, year, err)
			}
			c.State = append(c.State, bills...)
			log.Debug("fetched", logger.String("source", stateSource), logger.String("keyword", kw),
				logger.String("year", year), logger.Int("matches", len(bills)))
		}
	}
	return c, nil
}
