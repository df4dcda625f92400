package pricing

import (
	"testing"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() model.FabricationRates {
	return model.FabricationRates{
		Cutting:             decimal.NewFromInt(10),
		Drilling:            decimal.NewFromInt(25),
		Polishing:           decimal.NewFromInt(30),
		TemperingSurcharge:  decimal.NewFromInt(45),
		LaminationSurcharge: decimal.NewFromInt(60),
		Taper:               decimal.NewFromInt(40),
		Wastage:             decimal.NewFromInt(5),
	}
}

// 2ft x 3ft = 6 sq ft, perimeter 10 ft.
func footPanel(qty int) model.Panel {
	return model.NewPanel("P", 2, 3, model.UnitFoot, qty)
}

func TestComputeFabricationCharge_PerOp(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *model.Panel)
		want  string
	}{
		{"none", func(p *model.Panel) {}, "0.00"},
		{"cut", func(p *model.Panel) { p.AddOp(model.OpCut) }, "60.00"},
		{"drill", func(p *model.Panel) { p.AddOp(model.OpDrill) }, "100.00"},
		{"polish", func(p *model.Panel) { p.AddOp(model.OpPolish) }, "300.00"},
		{"taper", func(p *model.Panel) { p.SetTaper(true, 1, 1.5) }, "200.00"},
		{"tempered", func(p *model.Panel) { p.GlassType = model.GlassTempered }, "270.00"},
		{"laminated", func(p *model.Panel) { p.GlassType = model.GlassLaminated }, "360.00"},
		{"tinted", func(p *model.Panel) { p.GlassType = model.GlassTinted }, "0.00"},
		{"everything", func(p *model.Panel) {
			p.AddOp(model.OpCut)
			p.AddOp(model.OpDrill)
			p.AddOp(model.OpPolish)
			p.SetTaper(true, 1, 1.5)
			p.GlassType = model.GlassTempered
		}, "930.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := footPanel(1)
			tt.setup(&p)
			got, err := ComputeFabricationCharge(p, testRates())
			require.NoError(t, err)
			assert.Equal(t, tt.want, RoundMoney(got).StringFixed(2))
		})
	}
}

func TestComputeFabricationCharge_QuantityScaling(t *testing.T) {
	// Area-based terms scale with quantity; per-line terms do not.
	p := footPanel(3)
	p.AddOp(model.OpCut)
	p.AddOp(model.OpDrill)
	p.AddOp(model.OpPolish)

	got, err := ComputeFabricationCharge(p, testRates())
	require.NoError(t, err)
	assert.Equal(t, "580.00", RoundMoney(got).StringFixed(2)) // 18*10 + 100 + 300
}

func TestComputeFabricationCharge_InvalidPanel(t *testing.T) {
	p := footPanel(1)
	p.Width = 0
	_, err := ComputeFabricationCharge(p, testRates())
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
}

func TestComputeWastageCharge(t *testing.T) {
	plan := model.CuttingPlan{Summary: model.PlanSummary{TotalSheets: 1, TotalWasteArea: 10 * model.SqMMPerSqFt}}

	got := ComputeWastageCharge(plan, testRates())
	assert.Equal(t, "50.00", RoundMoney(got).StringFixed(2))

	rates := testRates()
	rates.Wastage = decimal.Zero
	assert.True(t, ComputeWastageCharge(plan, rates).IsZero())
}
