package pricing

import (
	"errors"
	"fmt"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
)

// ErrInvalidTaxMode is returned for a tax mode other than intra or inter.
var ErrInvalidTaxMode = errors.New("invalid tax mode")

var hundredPct = decimal.NewFromInt(100)

// LineTotals is the priced view of one panel line.
type LineTotals struct {
	PanelID     string          `json:"panel_id"`
	Label       string          `json:"label"`
	Quantity    int             `json:"quantity"`
	AreaPerUnit float64         `json:"area_per_unit"` // sq ft
	Area        float64         `json:"area"`          // sq ft, whole line
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Fabrication decimal.Decimal `json:"fabrication"`
}

// TaxBreakdown splits the tax amount by GST component.
type TaxBreakdown struct {
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
}

// Totals is the invoice summary of an order. Money values are rounded to
// 2 places.
type Totals struct {
	Lines         []LineTotals    `json:"lines"`
	TotalArea     float64         `json:"total_area"` // sq ft
	GlassCost     decimal.Decimal `json:"glass_cost"`
	FabCharges    decimal.Decimal `json:"fab_charges"` // includes WastageCharge
	WastageCharge decimal.Decimal `json:"wastage_charge"`
	FlatCharges   decimal.Decimal `json:"flat_charges"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxMode       model.TaxMode   `json:"tax_mode"`
	TaxRate       decimal.Decimal `json:"tax_rate"` // percent
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	TaxBreakdown  TaxBreakdown    `json:"tax_breakdown"`
	AmountInWords string          `json:"amount_in_words"`
}

// ComputeOrderTotals prices every panel of o and totals the invoice. When
// plan is non-nil its waste is billed at the order's wastage rate.
//
// All panels are priced before anything is summed, so an invalid panel
// returns its error and no partial totals.
func ComputeOrderTotals(o model.Order, plan *model.CuttingPlan) (Totals, error) {
	mode := o.Tax.Mode
	if mode == "" {
		mode = model.TaxIntraState
	}
	if mode != model.TaxIntraState && mode != model.TaxInterState {
		return Totals{}, fmt.Errorf("%w: %q", ErrInvalidTaxMode, string(o.Tax.Mode))
	}

	lines := make([]LineTotals, 0, len(o.Panels))
	fabs := make([]decimal.Decimal, 0, len(o.Panels))
	for _, p := range o.Panels {
		line, fab, err := priceLine(p, o.Rates)
		if err != nil {
			return Totals{}, err
		}
		lines = append(lines, line)
		fabs = append(fabs, fab)
	}

	t := Totals{Lines: lines, TaxMode: mode}
	glass := decimal.Zero
	fab := decimal.Zero
	for i, l := range lines {
		t.TotalArea += l.Area
		glass = glass.Add(l.Amount)
		fab = fab.Add(fabs[i])
	}

	wastage := decimal.Zero
	if plan != nil {
		wastage = ComputeWastageCharge(*plan, o.Rates)
		fab = fab.Add(wastage)
	}

	flat := o.Charges.Total()
	subtotal := glass.Add(fab).Add(flat)

	tc := o.Tax
	tc.Mode = mode
	taxRate := tc.Rate()
	tax := subtotal.Mul(taxRate).Div(hundredPct)
	grand := subtotal.Add(tax)

	t.GlassCost = glass
	t.FabCharges = RoundMoney(fab)
	t.WastageCharge = RoundMoney(wastage)
	t.FlatCharges = RoundMoney(flat)
	t.Subtotal = RoundMoney(subtotal)
	t.TaxRate = taxRate
	t.TaxAmount = RoundMoney(tax)
	t.GrandTotal = RoundMoney(grand)
	t.TaxBreakdown = breakdown(mode, tax)
	t.AmountInWords = NumberToWords(t.GrandTotal)
	return t, nil
}

func priceLine(p model.Panel, rates model.FabricationRates) (LineTotals, decimal.Decimal, error) {
	perUnit, err := AreaPerUnit(p)
	if err != nil {
		return LineTotals{}, decimal.Zero, err
	}
	amount, err := ComputeLineAmount(p)
	if err != nil {
		return LineTotals{}, decimal.Zero, err
	}
	fab, err := ComputeFabricationCharge(p, rates)
	if err != nil {
		return LineTotals{}, decimal.Zero, err
	}
	return LineTotals{
		PanelID:     p.ID,
		Label:       p.Label,
		Quantity:    p.Quantity,
		AreaPerUnit: perUnit,
		Area:        perUnit * float64(p.Quantity),
		Rate:        p.Rate,
		Amount:      amount,
		Fabrication: RoundMoney(fab),
	}, fab, nil
}

func breakdown(mode model.TaxMode, tax decimal.Decimal) TaxBreakdown {
	if mode == model.TaxInterState {
		return TaxBreakdown{CGST: decimal.Zero, SGST: decimal.Zero, IGST: RoundMoney(tax)}
	}
	// SGST takes the remainder so the halves add up to the rounded tax.
	total := RoundMoney(tax)
	cgst := RoundMoney(tax.Div(decimal.NewFromInt(2)))
	return TaxBreakdown{CGST: cgst, SGST: total.Sub(cgst), IGST: decimal.Zero}
}
