package pricing

import (
	"github.com/piwi3910/GlassCut/internal/model"
)

// CutList converts an order's panels into packer input in millimetres.
// Cut sizes are the raw dimensions; paimaish and extra margin are billing
// allowances and are not cut.
func CutList(o model.Order) ([]model.CutPiece, error) {
	pieces := make([]model.CutPiece, 0, len(o.Panels))
	for _, p := range o.Panels {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		w, _ := p.WidthMM()
		h, _ := p.HeightMM()
		pieces = append(pieces, model.CutPiece{
			PanelID:  p.ID,
			Label:    p.Label,
			Width:    w,
			Height:   h,
			Quantity: p.Quantity,
		})
	}
	return pieces, nil
}

// EdgeWork summarises polish and taper running feet for an order.
func EdgeWork(o model.Order) (model.EdgeWorkSummary, error) {
	return model.CalculateEdgeWork(o.Panels)
}
