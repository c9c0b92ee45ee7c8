// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the New York City Council and New York State Senate
// legislative APIs for bills matching a keyword list and reports the
// deduplicated matches per source.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/billquery/internal/logger"
	"github.com/pdiddy/billquery/internal/output"
	"github.com/pdiddy/billquery/pkg/types"
)

// Section titles, state first.
const (
	StateSection = "Matching results from NY state:"
	CitySection  = "Matching results from NYC"
)

// Run performs one full search: collect from both sources, then report the
// state bills followed by the city bills. Narration goes to the printer's
// diagnostic stream when cfg.Verbose is set. Any fetch failure aborts the run
// before anything is reported.
func Run(ctx context.Context, cfg types.QueryConfig, agg *Aggregator, p *output.Printer, log logger.Logger) error {
	if len(cfg.Keywords) == 0 {
		return fmt.Errorf("no keywords to search: provide --keyword or --keyword-file")
	}
	if log == nil {
		log = logger.NewNop()
	}

	if cfg.Verbose {
		p.Note("Performing search, this might take some time")
		p.Rule()
		p.Note("searching NY state bills (%s) and NYC matters (%s to %s) on the following keywords:",
			strings.Join(cfg.State.Years, ", "),
			cfg.City.AgendaFrom.Format(dateFmt), cfg.City.AgendaTo.Format(dateFmt))
		p.List(cfg.Keywords)
	}

	collected, err := agg.Collect(ctx, cfg.Keywords)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		p.Rule()
		if len(cfg.Ignore) > 0 {
			p.Note("the following bills are ignored in the results below:")
			p.List(sortedIDs(cfg.Ignore))
		}
	}

	state := Report(collected.State, cfg.Ignore, cfg.Format)
	city := Report(collected.City, cfg.Ignore, cfg.Format)
	log.Info("search complete",
		logger.Int("keywords", len(cfg.Keywords)),
		logger.Int("state_matches", len(collected.State)),
		logger.Int("state_reported", len(state)),
		logger.Int("city_matches", len(collected.City)),
		logger.Int("city_reported", len(city)),
	)

	p.Section(StateSection)
	if err := WriteReport(p.Out(), state, cfg.Format); err != nil {
		return fmt.Errorf("writing state report: %w", err)
	}
	p.Section(CitySection)
	if err := WriteReport(p.Out(), city, cfg.Format); err != nil {
		return fmt.Errorf("writing city report: %w", err)
	}
	return nil
}

func sortedIDs(set types.IgnoreSet) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
