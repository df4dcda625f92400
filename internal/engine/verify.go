package engine

import (
	"errors"
	"fmt"

	"github.com/piwi3910/GlassCut/internal/model"
)

// ErrInvalidPlan is returned by VerifyPlan.
var ErrInvalidPlan = errors.New("invalid cutting plan")

// VerifyPlan checks that every placement lies inside its sheet, that no two
// placements on a sheet overlap, and that every ordered unit of pieces is
// placed exactly once at its own size.
func VerifyPlan(plan model.CuttingPlan, pieces []model.CutPiece) error {
	j := plan.Jumbo
	placed := make(map[string]int)

	for _, s := range plan.Sheets {
		for i, a := range s.Placements {
			if a.X < -fitEps || a.Y < -fitEps || a.X+a.Width > j.Width+fitEps || a.Y+a.Height > j.Height+fitEps {
				return fmt.Errorf("%w: sheet %d: %s at (%g,%g) %gx%g outside %gx%g",
					ErrInvalidPlan, s.SheetIndex, a.PanelID, a.X, a.Y, a.Width, a.Height, j.Width, j.Height)
			}
			for _, b := range s.Placements[i+1:] {
				if overlaps(a, b) {
					return fmt.Errorf("%w: sheet %d: %s overlaps %s", ErrInvalidPlan, s.SheetIndex, a.PanelID, b.PanelID)
				}
			}
			placed[a.PanelID]++
		}
	}

	want := make(map[string]model.CutPiece)
	for _, pc := range pieces {
		if prev, ok := want[pc.PanelID]; ok {
			pc.Quantity += prev.Quantity
		}
		want[pc.PanelID] = pc
	}
	for id, pc := range want {
		if placed[id] != pc.Quantity {
			return fmt.Errorf("%w: panel %s placed %d times, want %d", ErrInvalidPlan, id, placed[id], pc.Quantity)
		}
	}
	for _, s := range plan.Sheets {
		for _, a := range s.Placements {
			pc, ok := want[a.PanelID]
			if !ok {
				return fmt.Errorf("%w: unknown panel %s", ErrInvalidPlan, a.PanelID)
			}
			if a.Width != pc.Width || a.Height != pc.Height {
				return fmt.Errorf("%w: panel %s placed as %gx%g, want %gx%g",
					ErrInvalidPlan, a.PanelID, a.Width, a.Height, pc.Width, pc.Height)
			}
		}
	}
	return nil
}

// overlaps ignores contact within fitEps so that abutting pieces with
// drifted edges are not reported.
func overlaps(a, b model.Placement) bool {
	return a.X+fitEps < b.X+b.Width && b.X+fitEps < a.X+a.Width &&
		a.Y+fitEps < b.Y+b.Height && b.Y+fitEps < a.Y+a.Height
}
