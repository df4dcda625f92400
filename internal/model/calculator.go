package model

import (
	"math"

	"github.com/shopspring/decimal"
)

// PurchaseEstimate holds the results of a jumbo sheet purchasing calculation.
type PurchaseEstimate struct {
	TotalPieceArea    float64         `json:"total_piece_area"`    // sq mm
	TotalSqFt         float64         `json:"total_sq_ft"`         // 1 sq ft = 92903.04 sq mm
	SheetArea         float64         `json:"sheet_area"`          // sq mm
	SheetsNeededExact float64         `json:"sheets_needed_exact"` // fractional lower bound
	SheetsNeededMin   int             `json:"sheets_needed_min"`   // ceiling of exact
	SheetsWithWaste   int             `json:"sheets_with_waste"`   // including waste factor
	WastePercent      float64         `json:"waste_percent"`
	PricePerSheet     decimal.Decimal `json:"price_per_sheet"`
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`
}

// EstimatePurchase computes how many jumbo sheets to buy for a cut list
// from area alone. wastePercent is an extra allowance (e.g. 10 for 10%).
// The packer gives the real count; this is the quick lower bound.
func EstimatePurchase(pieces []CutPiece, jumbo JumboSheet, wastePercent float64, pricePerSheet decimal.Decimal) PurchaseEstimate {
	var totalArea float64
	for _, p := range pieces {
		totalArea += p.Width * p.Height * float64(p.Quantity)
	}

	sheetArea := jumbo.Area()
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPieceArea: totalArea,
			TotalSqFt:      totalArea / SqMMPerSqFt,
			WastePercent:   wastePercent,
			PricePerSheet:  pricePerSheet,
			EstimatedCost:  decimal.Zero,
		}
	}

	exact := totalArea / sheetArea
	minSheets := int(math.Ceil(exact))

	withWaste := int(math.Ceil(exact * (1.0 + wastePercent/100.0)))
	if withWaste < minSheets {
		withWaste = minSheets
	}

	return PurchaseEstimate{
		TotalPieceArea:    totalArea,
		TotalSqFt:         totalArea / SqMMPerSqFt,
		SheetArea:         sheetArea,
		SheetsNeededExact: exact,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   withWaste,
		WastePercent:      wastePercent,
		PricePerSheet:     pricePerSheet,
		EstimatedCost:     pricePerSheet.Mul(decimal.NewFromInt(int64(withWaste))),
	}
}
