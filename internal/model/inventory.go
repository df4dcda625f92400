package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlassRate is the price per sq ft for a glass type and thickness.
type GlassRate struct {
	ID          string          `json:"id"`
	GlassType   GlassType       `json:"glass_type"`
	ThicknessMM float64         `json:"thickness_mm"`
	Rate        decimal.Decimal `json:"rate"`
}

// NewGlassRate creates a new GlassRate with a generated ID.
func NewGlassRate(glassType GlassType, thicknessMM float64, rate decimal.Decimal) GlassRate {
	return GlassRate{
		ID:          uuid.New().String()[:8],
		GlassType:   glassType,
		ThicknessMM: thicknessMM,
		Rate:        rate,
	}
}

// JumboPreset is a reusable jumbo sheet definition.
type JumboPreset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewJumboPreset creates a new JumboPreset with a generated ID.
func NewJumboPreset(name string, width, height float64) JumboPreset {
	return JumboPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  width,
		Height: height,
	}
}

// ToJumbo converts the preset into a JumboSheet.
func (jp JumboPreset) ToJumbo() JumboSheet {
	return JumboSheet{Label: jp.Name, Width: jp.Width, Height: jp.Height}
}

// Inventory holds the shop's glass rate list and jumbo sheet presets.
type Inventory struct {
	Rates  []GlassRate   `json:"rates"`
	Jumbos []JumboPreset `json:"jumbos"`
}

// DefaultInventory returns an inventory populated with common defaults.
func DefaultInventory() Inventory {
	return Inventory{
		Rates: []GlassRate{
			NewGlassRate(GlassClear, 5, decimal.NewFromInt(55)),
			NewGlassRate(GlassClear, 6, decimal.NewFromInt(65)),
			NewGlassRate(GlassClear, 8, decimal.NewFromInt(80)),
			NewGlassRate(GlassClear, 10, decimal.NewFromInt(105)),
			NewGlassRate(GlassClear, 12, decimal.NewFromInt(130)),
			NewGlassRate(GlassTinted, 5, decimal.NewFromInt(70)),
			NewGlassRate(GlassReflective, 6, decimal.NewFromInt(95)),
			NewGlassRate(GlassPatterned, 5, decimal.NewFromInt(60)),
			NewGlassRate(GlassTempered, 8, decimal.NewFromInt(80)),
			NewGlassRate(GlassTempered, 12, decimal.NewFromInt(135)),
			NewGlassRate(GlassLaminated, 10, decimal.NewFromInt(160)),
		},
		Jumbos: []JumboPreset{
			NewJumboPreset("Jumbo 6000x3300", 6000, 3300),
			NewJumboPreset("Jumbo 3660x2440", 3660, 2440),
			NewJumboPreset("Half 3300x2140", 3300, 2140),
		},
	}
}

// RateFor returns the rate for a glass type and thickness. A rate entry
// with thickness 0 matches any thickness of that type.
func (inv *Inventory) RateFor(glassType GlassType, thicknessMM float64) (decimal.Decimal, bool) {
	var fallback *GlassRate
	for i := range inv.Rates {
		r := &inv.Rates[i]
		if r.GlassType != glassType {
			continue
		}
		if r.ThicknessMM == thicknessMM {
			return r.Rate, true
		}
		if r.ThicknessMM == 0 && fallback == nil {
			fallback = r
		}
	}
	if fallback != nil {
		return fallback.Rate, true
	}
	return decimal.Zero, false
}

// FillRates sets the inventory rate on every panel whose rate is zero.
// It returns the IDs of panels that still have no rate.
func (inv *Inventory) FillRates(o *Order) []string {
	var missing []string
	for i := range o.Panels {
		p := &o.Panels[i]
		if !p.Rate.IsZero() {
			continue
		}
		if rate, ok := inv.RateFor(p.GlassType, p.ThicknessMM); ok {
			p.Rate = rate
			continue
		}
		missing = append(missing, p.ID)
	}
	return missing
}

// FindJumboByID returns a pointer to the jumbo preset with the given ID, or nil.
func (inv *Inventory) FindJumboByID(id string) *JumboPreset {
	for i := range inv.Jumbos {
		if inv.Jumbos[i].ID == id {
			return &inv.Jumbos[i]
		}
	}
	return nil
}

// FindJumboByName returns a pointer to the first jumbo preset with the given name, or nil.
func (inv *Inventory) FindJumboByName(name string) *JumboPreset {
	for i := range inv.Jumbos {
		if inv.Jumbos[i].Name == name {
			return &inv.Jumbos[i]
		}
	}
	return nil
}

// JumboNames returns the names of all jumbo presets.
func (inv *Inventory) JumboNames() []string {
	names := make([]string, len(inv.Jumbos))
	for i, j := range inv.Jumbos {
		names[i] = j.Name
	}
	return names
}
