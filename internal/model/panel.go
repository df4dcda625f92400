package model

import "fmt"

// SetUnit converts every dimension-bearing field to newUnit, preserving the
// real-world size. It is a no-op when newUnit equals the current unit.
// On error the panel is left untouched.
func (p *Panel) SetUnit(newUnit Unit) error {
	if !newUnit.Valid() {
		return panelErr(p.ID, "unit", fmt.Errorf("%w: %q", ErrInvalidUnit, string(newUnit)))
	}
	if !p.Unit.Valid() {
		return panelErr(p.ID, "unit", fmt.Errorf("%w: %q", ErrInvalidUnit, string(p.Unit)))
	}
	if newUnit == p.Unit {
		return nil
	}

	fields := []*float64{&p.Width, &p.Height, &p.TaperWidth, &p.TaperHeight, &p.Paimaish, &p.ExtraMargin}
	converted := make([]float64, len(fields))
	for i, f := range fields {
		v, err := Convert(*f, p.Unit, newUnit)
		if err != nil {
			return panelErr(p.ID, "unit", err)
		}
		converted[i] = v
	}
	for i, f := range fields {
		*f = converted[i]
	}
	p.Unit = newUnit
	return nil
}

// HasOp reports whether op is selected on the panel.
func (p Panel) HasOp(op FabricationOp) bool {
	for _, o := range p.FabricationOps {
		if o == op {
			return true
		}
	}
	return false
}

// AddOp selects op. Selecting an op twice has no effect.
func (p *Panel) AddOp(op FabricationOp) {
	if p.HasOp(op) {
		return
	}
	p.FabricationOps = append(p.FabricationOps, op)
}

// RemoveOp deselects op.
func (p *Panel) RemoveOp(op FabricationOp) {
	kept := p.FabricationOps[:0]
	for _, o := range p.FabricationOps {
		if o != op {
			kept = append(kept, o)
		}
	}
	p.FabricationOps = kept
}

// SetTaper enables or disables the taper edge. Disabling clears its size.
func (p *Panel) SetTaper(enabled bool, w, h float64) {
	p.IsTaper = enabled
	if !enabled {
		p.TaperWidth, p.TaperHeight = 0, 0
		return
	}
	p.TaperWidth, p.TaperHeight = w, h
}

// Validate checks the raw fields of the panel.
func (p Panel) Validate() error {
	if !p.Unit.Valid() {
		return panelErr(p.ID, "unit", fmt.Errorf("%w: %q", ErrInvalidUnit, string(p.Unit)))
	}
	if p.Quantity < 1 {
		return panelErr(p.ID, "quantity", fmt.Errorf("%w: %d", ErrInvalidQuantity, p.Quantity))
	}
	if p.Width <= 0 {
		return panelErr(p.ID, "width", fmt.Errorf("%w: %g", ErrInvalidDimension, p.Width))
	}
	if p.Height <= 0 {
		return panelErr(p.ID, "height", fmt.Errorf("%w: %g", ErrInvalidDimension, p.Height))
	}
	if p.IsTaper && (p.TaperWidth < 0 || p.TaperHeight < 0) {
		return panelErr(p.ID, "taper", fmt.Errorf("%w: %gx%g", ErrInvalidDimension, p.TaperWidth, p.TaperHeight))
	}
	if p.ThicknessMM != 0 && !IsStandardThickness(p.ThicknessMM) {
		return panelErr(p.ID, "thickness", fmt.Errorf("%w: non-standard thickness %gmm", ErrInvalidDimension, p.ThicknessMM))
	}
	if p.GlassType != "" && !p.GlassType.Valid() {
		return panelErr(p.ID, "glass_type", fmt.Errorf("%w: unknown glass type %q", ErrInvalidDimension, string(p.GlassType)))
	}
	for _, op := range p.FabricationOps {
		if !op.Valid() {
			return panelErr(p.ID, "fabrication_ops", fmt.Errorf("%w: unknown operation %q", ErrInvalidDimension, string(op)))
		}
	}
	return nil
}

// WidthMM returns the raw width in millimetres.
func (p Panel) WidthMM() (float64, error) {
	return p.toMM(p.Width)
}

// HeightMM returns the raw height in millimetres.
func (p Panel) HeightMM() (float64, error) {
	return p.toMM(p.Height)
}

// TaperWidthMM returns the taper width in millimetres.
func (p Panel) TaperWidthMM() (float64, error) {
	return p.toMM(p.TaperWidth)
}

// TaperHeightMM returns the taper height in millimetres.
func (p Panel) TaperHeightMM() (float64, error) {
	return p.toMM(p.TaperHeight)
}

// AllowanceMM returns Paimaish + ExtraMargin in millimetres.
func (p Panel) AllowanceMM() (float64, error) {
	return p.toMM(p.Paimaish + p.ExtraMargin)
}

func (p Panel) toMM(v float64) (float64, error) {
	mm, err := ToMM(v, p.Unit)
	if err != nil {
		return 0, panelErr(p.ID, "unit", err)
	}
	return mm, nil
}
