package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlassType selects which per-area surcharge applies to a panel.
type GlassType string

const (
	GlassClear      GlassType = "clear"
	GlassTinted     GlassType = "tinted"
	GlassTempered   GlassType = "tempered"
	GlassLaminated  GlassType = "laminated"
	GlassReflective GlassType = "reflective"
	GlassPatterned  GlassType = "patterned"
)

// GlassTypes returns all glass types in display order.
func GlassTypes() []GlassType {
	return []GlassType{GlassClear, GlassTinted, GlassTempered, GlassLaminated, GlassReflective, GlassPatterned}
}

// Valid reports whether g is a known glass type.
func (g GlassType) Valid() bool {
	for _, t := range GlassTypes() {
		if t == g {
			return true
		}
	}
	return false
}

// FabricationOp is a billable operation performed on a panel.
type FabricationOp string

const (
	OpCut    FabricationOp = "cut"
	OpDrill  FabricationOp = "drill"
	OpPolish FabricationOp = "polish"
)

// Valid reports whether op is a known fabrication operation.
func (op FabricationOp) Valid() bool {
	switch op {
	case OpCut, OpDrill, OpPolish:
		return true
	}
	return false
}

// StandardThicknesses lists the glass thicknesses (mm) the factory stocks.
var StandardThicknesses = []float64{4, 5, 6, 8, 10, 12, 15, 19}

// IsStandardThickness reports whether mm is in StandardThicknesses.
func IsStandardThickness(mm float64) bool {
	for _, t := range StandardThicknesses {
		if t == mm {
			return true
		}
	}
	return false
}

// Panel is one ordered glass piece. Raw dimensions and allowances are all
// expressed in Unit. Area and amounts are derived on read by the pricing
// package and never stored here.
type Panel struct {
	ID             string          `json:"id"`
	Label          string          `json:"label"`
	Width          float64         `json:"width"`
	Height         float64         `json:"height"`
	Unit           Unit            `json:"unit"`
	GlassType      GlassType       `json:"glass_type"`
	ThicknessMM    float64         `json:"thickness_mm"` // 0 = unspecified
	IsTaper        bool            `json:"is_taper"`
	TaperWidth     float64         `json:"taper_width"`
	TaperHeight    float64         `json:"taper_height"`
	FabricationOps []FabricationOp `json:"fabrication_ops"`
	Paimaish       float64         `json:"paimaish"`     // measurement tolerance added to both sides
	ExtraMargin    float64         `json:"extra_margin"` // additional allowance added to both sides
	Quantity       int             `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"` // per sq ft
}

func NewPanel(label string, w, h float64, unit Unit, qty int) Panel {
	return Panel{
		ID:             uuid.New().String()[:8],
		Label:          label,
		Width:          w,
		Height:         h,
		Unit:           unit,
		GlassType:      GlassClear,
		FabricationOps: []FabricationOp{},
		Quantity:       qty,
		Rate:           decimal.Zero,
	}
}

// FabricationRates are the per-operation unit rates of an order.
type FabricationRates struct {
	Cutting             decimal.Decimal `json:"cutting"`              // per sq ft
	Drilling            decimal.Decimal `json:"drilling"`             // per hole
	Polishing           decimal.Decimal `json:"polishing"`            // per running ft
	TemperingSurcharge  decimal.Decimal `json:"tempering_surcharge"`  // per sq ft
	LaminationSurcharge decimal.Decimal `json:"lamination_surcharge"` // per sq ft
	Taper               decimal.Decimal `json:"taper"`                // per running ft
	Wastage             decimal.Decimal `json:"wastage"`              // per sq ft of jumbo waste, 0 = off
}

// FlatCharges are order level charges independent of the panels.
type FlatCharges struct {
	Transport    decimal.Decimal `json:"transport"`
	Packing      decimal.Decimal `json:"packing"`
	Loading      decimal.Decimal `json:"loading"`
	Installation decimal.Decimal `json:"installation"`
}

// Total returns the sum of the four flat charges.
func (c FlatCharges) Total() decimal.Decimal {
	return c.Transport.Add(c.Packing).Add(c.Loading).Add(c.Installation)
}

// TaxMode selects between a CGST+SGST split and IGST.
type TaxMode string

const (
	TaxIntraState TaxMode = "intra"
	TaxInterState TaxMode = "inter"
)

// TaxConfig holds GST percentages for an order.
type TaxConfig struct {
	SGSTPct decimal.Decimal `json:"sgst_pct"`
	CGSTPct decimal.Decimal `json:"cgst_pct"`
	IGSTPct decimal.Decimal `json:"igst_pct"`
	Mode    TaxMode         `json:"mode"`
}

// Rate returns the effective tax percentage for the configured mode.
func (t TaxConfig) Rate() decimal.Decimal {
	if t.Mode == TaxInterState {
		return t.IGSTPct
	}
	return t.SGSTPct.Add(t.CGSTPct)
}

// JumboSheet is the raw stock sheet the factory cuts from (mm).
type JumboSheet struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the sheet area in sq mm.
func (j JumboSheet) Area() float64 {
	return j.Width * j.Height
}

// Order ties panels to the rate tables used to price them.
type Order struct {
	ID        string           `json:"id"`
	Number    string           `json:"number"`
	Customer  string           `json:"customer"`
	Panels    []Panel          `json:"panels"`
	Rates     FabricationRates `json:"rates"`
	Charges   FlatCharges      `json:"charges"`
	Tax       TaxConfig        `json:"tax"`
	Jumbo     JumboSheet       `json:"jumbo"`
	CreatedAt string           `json:"created_at"`
}

func NewOrder(number string) Order {
	return Order{
		ID:        uuid.New().String()[:8],
		Number:    number,
		Panels:    []Panel{},
		Rates:     DefaultRates(),
		Charges:   DefaultCharges(),
		Tax:       DefaultTax(),
		Jumbo:     DefaultJumbo(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// AddPanel appends p, assigning an ID when it has none.
func (o *Order) AddPanel(p Panel) Panel {
	if p.ID == "" {
		p.ID = uuid.New().String()[:8]
	}
	o.Panels = append(o.Panels, p)
	return p
}

// RemovePanel removes a panel by ID. Returns true if found and removed.
func (o *Order) RemovePanel(id string) bool {
	for i, p := range o.Panels {
		if p.ID == id {
			o.Panels = append(o.Panels[:i], o.Panels[i+1:]...)
			return true
		}
	}
	return false
}

// FindPanel returns a pointer to the panel with the given ID, or nil.
func (o *Order) FindPanel(id string) *Panel {
	for i := range o.Panels {
		if o.Panels[i].ID == id {
			return &o.Panels[i]
		}
	}
	return nil
}

func DefaultRates() FabricationRates {
	return FabricationRates{
		Cutting:             decimal.NewFromInt(0),
		Drilling:            decimal.NewFromInt(25),
		Polishing:           decimal.NewFromInt(30),
		TemperingSurcharge:  decimal.NewFromInt(45),
		LaminationSurcharge: decimal.NewFromInt(60),
		Taper:               decimal.NewFromInt(40),
		Wastage:             decimal.Zero,
	}
}

func DefaultCharges() FlatCharges {
	return FlatCharges{
		Transport:    decimal.NewFromInt(500),
		Packing:      decimal.NewFromInt(300),
		Loading:      decimal.NewFromInt(200),
		Installation: decimal.NewFromInt(1000),
	}
}

func DefaultTax() TaxConfig {
	return TaxConfig{
		SGSTPct: decimal.NewFromInt(9),
		CGSTPct: decimal.NewFromInt(9),
		IGSTPct: decimal.NewFromInt(18),
		Mode:    TaxIntraState,
	}
}

func DefaultJumbo() JumboSheet {
	return JumboSheet{Label: "Jumbo 6000x3300", Width: 6000, Height: 3300}
}

// CutPiece is a required rectangle for the packer, in millimetres.
type CutPiece struct {
	PanelID  string  `json:"panel_id"`
	Label    string  `json:"label"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

// Placement is one unit of a panel placed on a jumbo sheet.
type Placement struct {
	PanelID string  `json:"panel_id"`
	Label   string  `json:"label"`
	X       float64 `json:"x"` // mm from left edge
	Y       float64 `json:"y"` // mm from top edge
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Area returns the placed area in sq mm.
func (p Placement) Area() float64 {
	return p.Width * p.Height
}

// Shelf is a horizontal strip of a sheet filled left to right.
type Shelf struct {
	Y         float64 `json:"y"`
	Height    float64 `json:"height"`
	UsedWidth float64 `json:"used_width"`
}

// SheetAssignment is one jumbo sheet with the panels cut from it.
type SheetAssignment struct {
	SheetIndex int         `json:"sheet_index"`
	Placements []Placement `json:"placements"`
	Shelves    []Shelf     `json:"shelves"`
	UsedArea   float64     `json:"used_area"`  // sq mm
	WasteArea  float64     `json:"waste_area"` // sq mm
}

// Efficiency returns the used share of the sheet as a percentage.
func (s SheetAssignment) Efficiency(jumbo JumboSheet) float64 {
	if jumbo.Area() == 0 {
		return 0
	}
	return s.UsedArea / jumbo.Area() * 100.0
}

// PlanSummary aggregates waste over all sheets of a plan.
type PlanSummary struct {
	TotalSheets    int     `json:"total_sheets"`
	TotalWasteArea float64 `json:"total_waste_area"` // sq mm
	WastePercent   float64 `json:"waste_percent"`
}

// CuttingPlan is the packer's output.
type CuttingPlan struct {
	Jumbo   JumboSheet        `json:"jumbo"`
	Sheets  []SheetAssignment `json:"sheets"`
	Summary PlanSummary       `json:"summary"`
}

// PlacementCount returns the number of placed units across all sheets.
func (p CuttingPlan) PlacementCount() int {
	n := 0
	for _, s := range p.Sheets {
		n += len(s.Placements)
	}
	return n
}
