package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/GlassCut/internal/model"
)

// Packer lays out cut pieces on jumbo sheets with a guillotine shelf
// heuristic. Pieces are never rotated.
type Packer struct {
	Jumbo model.JumboSheet
}

func New(jumbo model.JumboSheet) *Packer {
	return &Packer{Jumbo: jumbo}
}

// Pack is a shorthand for New(jumbo).Pack(pieces).
func Pack(pieces []model.CutPiece, jumbo model.JumboSheet) (model.CuttingPlan, error) {
	return New(jumbo).Pack(pieces)
}

// fitEps absorbs float drift in summed millimetres from ft/in conversions.
const fitEps = 1e-6

// unit is one expanded piece awaiting placement.
type unit struct {
	panelID string
	label   string
	w, h    float64
}

// Pack places every unit of every piece and returns the plan. Input is
// validated up front; on error nothing is packed.
//
// Units are sorted by height, then width (both descending), then panel ID.
// Each unit goes on the open shelf with the smallest sufficient height that
// still has room across; ties go to the earliest sheet and shelf. If no
// shelf fits, a new shelf is opened on the first sheet with vertical room,
// otherwise on a new sheet.
func (p *Packer) Pack(pieces []model.CutPiece) (model.CuttingPlan, error) {
	if err := p.validate(pieces); err != nil {
		return model.CuttingPlan{}, err
	}

	units := expand(pieces)
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].h != units[j].h {
			return units[i].h > units[j].h
		}
		if units[i].w != units[j].w {
			return units[i].w > units[j].w
		}
		return units[i].panelID < units[j].panelID
	})

	sp := &shelfPacker{jumbo: p.Jumbo}
	for _, u := range units {
		sp.place(u)
	}
	return sp.plan(), nil
}

func (p *Packer) validate(pieces []model.CutPiece) error {
	j := p.Jumbo
	if j.Width <= 0 || j.Height <= 0 {
		return fmt.Errorf("%w: jumbo sheet %gx%g", model.ErrInvalidDimension, j.Width, j.Height)
	}
	for _, pc := range pieces {
		if pc.Quantity < 1 {
			return &model.PanelError{PanelID: pc.PanelID, Field: "quantity",
				Err: fmt.Errorf("%w: %d", model.ErrInvalidQuantity, pc.Quantity)}
		}
		if pc.Width <= 0 || pc.Height <= 0 {
			return &model.PanelError{PanelID: pc.PanelID, Field: "size",
				Err: fmt.Errorf("%w: %gx%g", model.ErrInvalidDimension, pc.Width, pc.Height)}
		}
		if pc.Width > j.Width+fitEps || pc.Height > j.Height+fitEps {
			return &model.PanelError{PanelID: pc.PanelID, Field: "size",
				Err: fmt.Errorf("%w: %gx%g on %gx%g", model.ErrPanelTooLarge, pc.Width, pc.Height, j.Width, j.Height)}
		}
	}
	return nil
}

func expand(pieces []model.CutPiece) []unit {
	var units []unit
	for _, pc := range pieces {
		for i := 0; i < pc.Quantity; i++ {
			units = append(units, unit{panelID: pc.PanelID, label: pc.Label, w: pc.Width, h: pc.Height})
		}
	}
	return units
}

// shelfPacker holds the open sheets while a plan is being built.
type shelfPacker struct {
	jumbo  model.JumboSheet
	sheets []model.SheetAssignment
}

func (sp *shelfPacker) place(u unit) {
	si, hi := sp.bestShelf(u)
	if si < 0 {
		si, hi = sp.openShelf(u.h)
	}

	sheet := &sp.sheets[si]
	shelf := &sheet.Shelves[hi]
	sheet.Placements = append(sheet.Placements, model.Placement{
		PanelID: u.panelID,
		Label:   u.label,
		X:       shelf.UsedWidth,
		Y:       shelf.Y,
		Width:   u.w,
		Height:  u.h,
	})
	shelf.UsedWidth += u.w
	sheet.UsedArea += u.w * u.h
}

// bestShelf returns the eligible shelf with the smallest height, or -1, -1.
func (sp *shelfPacker) bestShelf(u unit) (int, int) {
	bestSheet, bestShelf := -1, -1
	bestHeight := 0.0
	for si := range sp.sheets {
		for hi, sh := range sp.sheets[si].Shelves {
			if sh.Height+fitEps < u.h || sh.UsedWidth+u.w > sp.jumbo.Width+fitEps {
				continue
			}
			if bestSheet < 0 || sh.Height < bestHeight {
				bestSheet, bestShelf, bestHeight = si, hi, sh.Height
			}
		}
	}
	return bestSheet, bestShelf
}

// openShelf starts a shelf of height h on the first sheet with room below
// its last shelf, opening a new sheet when none has.
func (sp *shelfPacker) openShelf(h float64) (int, int) {
	for si := range sp.sheets {
		y := bottom(sp.sheets[si])
		if y+h <= sp.jumbo.Height+fitEps {
			sp.sheets[si].Shelves = append(sp.sheets[si].Shelves, model.Shelf{Y: y, Height: h})
			return si, len(sp.sheets[si].Shelves) - 1
		}
	}
	sp.sheets = append(sp.sheets, model.SheetAssignment{
		SheetIndex: len(sp.sheets),
		Placements: []model.Placement{},
		Shelves:    []model.Shelf{{Y: 0, Height: h}},
	})
	return len(sp.sheets) - 1, 0
}

func bottom(s model.SheetAssignment) float64 {
	if len(s.Shelves) == 0 {
		return 0
	}
	last := s.Shelves[len(s.Shelves)-1]
	return last.Y + last.Height
}

func (sp *shelfPacker) plan() model.CuttingPlan {
	plan := model.CuttingPlan{Jumbo: sp.jumbo, Sheets: sp.sheets}
	if plan.Sheets == nil {
		plan.Sheets = []model.SheetAssignment{}
	}

	sheetArea := sp.jumbo.Area()
	for i := range plan.Sheets {
		s := &plan.Sheets[i]
		s.WasteArea = sheetArea - s.UsedArea
		plan.Summary.TotalWasteArea += s.WasteArea
	}
	plan.Summary.TotalSheets = len(plan.Sheets)
	if plan.Summary.TotalSheets > 0 {
		plan.Summary.WastePercent = plan.Summary.TotalWasteArea / (float64(plan.Summary.TotalSheets) * sheetArea) * 100
	}
	return plan
}
