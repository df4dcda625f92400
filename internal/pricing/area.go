// Package pricing turns panels and rate tables into billable areas, line
// amounts, fabrication charges and order totals.
//
// Functions here are pure: every derived value is recomputed from the
// panel's raw fields on each call.
package pricing

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
)

// AreaPerUnit returns the billable area of one piece in sq ft: width and
// height in mm, each widened by paimaish and extra margin.
func AreaPerUnit(p model.Panel) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	w, h, err := adjustedMM(p)
	if err != nil {
		return 0, err
	}
	return w * h / model.SqMMPerSqFt, nil
}

// ComputeArea returns the billable area of the whole line in sq ft.
func ComputeArea(p model.Panel) (float64, error) {
	a, err := AreaPerUnit(p)
	if err != nil {
		return 0, err
	}
	return a * float64(p.Quantity), nil
}

// ComputeLineAmount returns area × rate rounded to 2 places.
func ComputeLineAmount(p model.Panel) (decimal.Decimal, error) {
	area, err := ComputeArea(p)
	if err != nil {
		return decimal.Zero, err
	}
	return RoundMoney(decimal.NewFromFloat(area).Mul(p.Rate)), nil
}

// RoundMoney rounds half away from zero to 2 decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func adjustedMM(p model.Panel) (float64, float64, error) {
	w, err := p.WidthMM()
	if err != nil {
		return 0, 0, err
	}
	h, err := p.HeightMM()
	if err != nil {
		return 0, 0, err
	}
	allowance, err := p.AllowanceMM()
	if err != nil {
		return 0, 0, err
	}

	w += allowance
	h += allowance
	if w <= 0 || h <= 0 {
		return 0, 0, &model.PanelError{PanelID: p.ID, Field: "allowance",
			Err: fmt.Errorf("%w: adjusted size %gx%g mm", model.ErrInvalidDimension, w, h)}
	}
	return w, h, nil
}
