// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"

	"github.com/pdiddy/billquery/internal/httputil"
	"github.com/pdiddy/billquery/pkg/types"
)

// NormalizeCity converts Legistar matters into bills, one per matter, in
// arrival order. A matter without a file number or title is malformed.
func NormalizeCity(matters []CityMatter, format types.OutputFormat) ([]types.Bill, error) {
	bills := make([]types.Bill, 0, len(matters))
	for i, m := range matters {
		if m.MatterFile == nil {
			return nil, httputil.Malformed(citySource, "matter %d (id %d) has no MatterFile", i, m.MatterID)
		}
		if m.MatterTitle == nil {
			return nil, httputil.Malformed(citySource, "matter %s has no MatterTitle", *m.MatterFile)
		}
		bills = append(bills, types.Bill{
			Identifier: *m.MatterFile,
			Title:      sanitizeTitle(*m.MatterTitle, format),
		})
	}
	return bills, nil
}

// NormalizeState converts an Open Legislation search response into bills,
// one per item, in arrival order. The bill fields sit one level down, in
// each item's result object.
func NormalizeState(resp StateSearchResponse, format types.OutputFormat) ([]types.Bill, error) {
	if resp.Result == nil {
		return nil, httputil.Malformed(stateSource, "search response has no result")
	}

	bills := make([]types.Bill, 0, len(resp.Result.Items))
	for i, item := range resp.Result.Items {
		if item.Result == nil {
			return nil, httputil.Malformed(stateSource, "item %d has no result", i)
		}
		if item.Result.BasePrintNo == nil {
			return nil, httputil.Malformed(stateSource, "item %d has no basePrintNo", i)
		}
		if item.Result.Title == nil {
			return nil, httputil.Malformed(stateSource, "bill %s has no title", *item.Result.BasePrintNo)
		}
		bills = append(bills, types.Bill{
			Identifier: *item.Result.BasePrintNo,
			Title:      sanitizeTitle(*item.Result.Title, format),
		})
	}
	return bills, nil
}

// sanitizeTitle strips carriage returns. CSV titles also have commas
// replaced with "/" so the line keeps exactly two fields.
func sanitizeTitle(title string, format types.OutputFormat) string {
	title = strings.ReplaceAll(title, "\r", "")
	if format == types.FormatCSV {
		title = strings.ReplaceAll(title, ",", "/")
	}
	return title
}
