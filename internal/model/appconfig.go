package model

// AppConfig holds application-wide preferences and the defaults applied to
// new orders.
type AppConfig struct {
	Env string `json:"env"` // "local", "dev" or "prod"; selects log format

	DefaultUnit     Unit             `json:"default_unit"`
	DefaultPaimaish float64          `json:"default_paimaish"` // in DefaultUnit
	DefaultRates    FabricationRates `json:"default_rates"`
	DefaultCharges  FlatCharges      `json:"default_charges"`
	DefaultTax      TaxConfig        `json:"default_tax"`
	DefaultJumbo    JumboSheet       `json:"default_jumbo"`

	// WastePercent is the allowance used by the jumbo purchase estimate.
	WastePercent float64 `json:"waste_percent"`

	RecentOrders []string `json:"recent_orders"`
}

// DefaultAppConfig returns an AppConfig populated with the shop defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Env:             "prod",
		DefaultUnit:     UnitMM,
		DefaultPaimaish: 5,
		DefaultRates:    DefaultRates(),
		DefaultCharges:  DefaultCharges(),
		DefaultTax:      DefaultTax(),
		DefaultJumbo:    DefaultJumbo(),
		WastePercent:    10,
		RecentOrders:    []string{},
	}
}

// ApplyToOrder copies the configured defaults into an order.
// Panels are not touched.
func (c AppConfig) ApplyToOrder(o *Order) {
	o.Rates = c.DefaultRates
	o.Charges = c.DefaultCharges
	o.Tax = c.DefaultTax
	o.Jumbo = c.DefaultJumbo
}

// NewPanel creates a panel in the configured unit with the default paimaish.
func (c AppConfig) NewPanel(label string, w, h float64, qty int) Panel {
	unit := c.DefaultUnit
	if !unit.Valid() {
		unit = UnitMM
	}
	p := NewPanel(label, w, h, unit, qty)
	p.Paimaish = c.DefaultPaimaish
	return p
}

// OrderSections records which order-level sections an order file set.
type OrderSections struct {
	Rates   bool
	Charges bool
	Tax     bool
	Jumbo   bool
}

// Complete fills what a loaded order left out: empty panel units and glass
// types, and every section not marked in given. A given section is kept as
// is, even when all zero.
func (c AppConfig) Complete(o *Order, given OrderSections) {
	unit := c.DefaultUnit
	if !unit.Valid() {
		unit = UnitMM
	}
	for i := range o.Panels {
		if o.Panels[i].Unit == "" {
			o.Panels[i].Unit = unit
		}
		if o.Panels[i].GlassType == "" {
			o.Panels[i].GlassType = GlassClear
		}
	}
	if !given.Jumbo {
		o.Jumbo = c.DefaultJumbo
	}
	if !given.Tax {
		o.Tax = c.DefaultTax
	}
	if !given.Rates {
		o.Rates = c.DefaultRates
	}
	if !given.Charges {
		o.Charges = c.DefaultCharges
	}
}
