package pricing

import (
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
)

// DrillHoleCount is the number of holes billed for a drilled panel.
const DrillHoleCount = 4

// ComputeFabricationCharge returns the unrounded fabrication charge of a
// panel line. Cutting and glass-type surcharges scale with the line's total
// area; drilling, polishing and taper are billed once per line.
func ComputeFabricationCharge(p model.Panel, rates model.FabricationRates) (decimal.Decimal, error) {
	area, err := ComputeArea(p)
	if err != nil {
		return decimal.Zero, err
	}
	sqft := decimal.NewFromFloat(area)
	charge := decimal.Zero

	if p.HasOp(model.OpCut) {
		charge = charge.Add(sqft.Mul(rates.Cutting))
	}
	if p.HasOp(model.OpDrill) {
		charge = charge.Add(decimal.NewFromInt(DrillHoleCount).Mul(rates.Drilling))
	}
	if p.HasOp(model.OpPolish) {
		w, _ := p.WidthMM()
		h, _ := p.HeightMM()
		charge = charge.Add(perimeterFt(w, h).Mul(rates.Polishing))
	}
	if p.IsTaper {
		tw, _ := p.TaperWidthMM()
		th, _ := p.TaperHeightMM()
		charge = charge.Add(perimeterFt(tw, th).Mul(rates.Taper))
	}

	switch p.GlassType {
	case model.GlassTempered:
		charge = charge.Add(sqft.Mul(rates.TemperingSurcharge))
	case model.GlassLaminated:
		charge = charge.Add(sqft.Mul(rates.LaminationSurcharge))
	}
	return charge, nil
}

// ComputeWastageCharge bills the plan's total jumbo waste at rates.Wastage
// per sq ft. It is zero when the wastage rate is zero.
func ComputeWastageCharge(plan model.CuttingPlan, rates model.FabricationRates) decimal.Decimal {
	if rates.Wastage.IsZero() {
		return decimal.Zero
	}
	sqft := decimal.NewFromFloat(plan.Summary.TotalWasteArea / model.SqMMPerSqFt)
	return sqft.Mul(rates.Wastage)
}

// perimeterFt returns the running feet around a w × h mm rectangle.
func perimeterFt(w, h float64) decimal.Decimal {
	return decimal.NewFromFloat(2 * (w + h) / model.MMPerFoot)
}
