package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanel(t *testing.T) {
	p := NewPanel("Door", 1000, 1500, UnitMM, 2)
	assert.Len(t, p.ID, 8)
	assert.Equal(t, GlassClear, p.GlassType)
	assert.Equal(t, 2, p.Quantity)
	assert.True(t, p.Rate.IsZero())
	assert.NoError(t, p.Validate())

	other := NewPanel("Door", 1000, 1500, UnitMM, 2)
	assert.NotEqual(t, p.ID, other.ID)
}

func TestPanelSetUnit_ConvertsAllDimensions(t *testing.T) {
	p := NewPanel("P", 254, 508, UnitMM, 1)
	p.SetTaper(true, 127, 25.4)
	p.Paimaish = 5.08
	p.ExtraMargin = 2.54

	require.NoError(t, p.SetUnit(UnitInch))
	assert.Equal(t, UnitInch, p.Unit)
	assert.InDelta(t, 10, p.Width, 1e-9)
	assert.InDelta(t, 20, p.Height, 1e-9)
	assert.InDelta(t, 5, p.TaperWidth, 1e-9)
	assert.InDelta(t, 1, p.TaperHeight, 1e-9)
	assert.InDelta(t, 0.2, p.Paimaish, 1e-9)
	assert.InDelta(t, 0.1, p.ExtraMargin, 1e-9)

	// Real-world size is preserved.
	w, err := p.WidthMM()
	require.NoError(t, err)
	assert.InDelta(t, 254, w, 1e-9)

	require.NoError(t, p.SetUnit(UnitMM))
	assert.InDelta(t, 254, p.Width, 1e-9)
	assert.InDelta(t, 5.08, p.Paimaish, 1e-9)
}

func TestPanelSetUnit_NoOp(t *testing.T) {
	p := NewPanel("P", 100, 200, UnitFoot, 1)
	require.NoError(t, p.SetUnit(UnitFoot))
	assert.Equal(t, 100.0, p.Width)
	assert.Equal(t, 200.0, p.Height)
}

func TestPanelSetUnit_InvalidLeavesPanelUntouched(t *testing.T) {
	p := NewPanel("P", 100, 200, UnitMM, 1)
	err := p.SetUnit(Unit("cm"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUnit))

	var pe *PanelError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, p.ID, pe.PanelID)

	assert.Equal(t, UnitMM, p.Unit)
	assert.Equal(t, 100.0, p.Width)
}

func TestPanelValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Panel)
		want   error
	}{
		{"zero width", func(p *Panel) { p.Width = 0 }, ErrInvalidDimension},
		{"negative height", func(p *Panel) { p.Height = -1 }, ErrInvalidDimension},
		{"zero quantity", func(p *Panel) { p.Quantity = 0 }, ErrInvalidQuantity},
		{"unknown unit", func(p *Panel) { p.Unit = "cm" }, ErrInvalidUnit},
		{"odd thickness", func(p *Panel) { p.ThicknessMM = 7 }, ErrInvalidDimension},
		{"unknown glass", func(p *Panel) { p.GlassType = "frosted" }, ErrInvalidDimension},
		{"unknown op", func(p *Panel) { p.FabricationOps = []FabricationOp{"bevel"} }, ErrInvalidDimension},
		{"negative taper", func(p *Panel) { p.SetTaper(true, -3, 10) }, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel("P", 100, 200, UnitMM, 1)
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	p := NewPanel("P", 100, 200, UnitMM, 1)
	p.ThicknessMM = 12
	p.GlassType = GlassLaminated
	assert.NoError(t, p.Validate())
}

func TestPanelOps(t *testing.T) {
	p := NewPanel("P", 100, 200, UnitMM, 1)
	p.AddOp(OpDrill)
	p.AddOp(OpDrill)
	p.AddOp(OpPolish)
	assert.Equal(t, []FabricationOp{OpDrill, OpPolish}, p.FabricationOps)
	assert.True(t, p.HasOp(OpPolish))
	assert.False(t, p.HasOp(OpCut))

	p.RemoveOp(OpDrill)
	assert.Equal(t, []FabricationOp{OpPolish}, p.FabricationOps)
}

func TestPanelSetTaperDisableClearsSize(t *testing.T) {
	p := NewPanel("P", 100, 200, UnitMM, 1)
	p.SetTaper(true, 50, 60)
	assert.True(t, p.IsTaper)
	p.SetTaper(false, 50, 60)
	assert.False(t, p.IsTaper)
	assert.Zero(t, p.TaperWidth)
	assert.Zero(t, p.TaperHeight)
}

func TestOrderPanels(t *testing.T) {
	o := NewOrder("INV-1")
	a := o.AddPanel(NewPanel("A", 100, 100, UnitMM, 1))
	b := o.AddPanel(Panel{Label: "B", Width: 10, Height: 10, Unit: UnitInch, Quantity: 1})
	assert.NotEmpty(t, b.ID)
	require.Len(t, o.Panels, 2)

	require.NotNil(t, o.FindPanel(a.ID))
	assert.Equal(t, "A", o.FindPanel(a.ID).Label)

	assert.True(t, o.RemovePanel(a.ID))
	assert.False(t, o.RemovePanel(a.ID))
	assert.Nil(t, o.FindPanel(a.ID))
	assert.Len(t, o.Panels, 1)
}

func TestTaxConfigRate(t *testing.T) {
	tax := DefaultTax()
	assert.Equal(t, "18", tax.Rate().String())

	tax.Mode = TaxInterState
	tax.IGSTPct = tax.IGSTPct.Add(tax.IGSTPct)
	assert.Equal(t, "36", tax.Rate().String())
}

func TestFlatChargesTotal(t *testing.T) {
	assert.Equal(t, "2000", DefaultCharges().Total().String())
}
