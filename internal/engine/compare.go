package engine

import (
	"github.com/piwi3910/GlassCut/internal/model"
)

// ComparisonResult holds the plan and statistics for one jumbo size.
type ComparisonResult struct {
	Jumbo        model.JumboSheet
	Plan         model.CuttingPlan
	SheetsUsed   int
	WastePercent float64
	Err          error // set when the cut list cannot be packed on this size
}

// CompareJumbos packs the same cut list on each jumbo size and returns the
// results in input order. This shows which stock size suits an order best.
func CompareJumbos(pieces []model.CutPiece, jumbos []model.JumboSheet) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(jumbos))

	for _, j := range jumbos {
		plan, err := Pack(pieces, j)
		if err != nil {
			results = append(results, ComparisonResult{Jumbo: j, Err: err})
			continue
		}
		results = append(results, ComparisonResult{
			Jumbo:        j,
			Plan:         plan,
			SheetsUsed:   plan.Summary.TotalSheets,
			WastePercent: plan.Summary.WastePercent,
		})
	}

	return results
}

// BestJumbo returns the packable result with the fewest sheets, then the
// lowest waste. Earlier results win ties.
func BestJumbo(results []ComparisonResult) (ComparisonResult, bool) {
	best := -1
	for i, r := range results {
		if r.Err != nil {
			continue
		}
		if best < 0 ||
			r.SheetsUsed < results[best].SheetsUsed ||
			(r.SheetsUsed == results[best].SheetsUsed && r.WastePercent < results[best].WastePercent) {
			best = i
		}
	}
	if best < 0 {
		return ComparisonResult{}, false
	}
	return results[best], true
}
