package model

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut is a usable rectangular remnant left on a jumbo sheet after cutting.
type Offcut struct {
	ID         string  `json:"id"`
	SheetIndex int     `json:"sheet_index"`
	X          float64 `json:"x"` // mm from left
	Y          float64 `json:"y"` // mm from top
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Area returns the area of the offcut in sq mm.
func (o Offcut) Area() float64 {
	return o.Width * o.Height
}

// ToJumbo converts an offcut into a sheet that can be planned against.
func (o Offcut) ToJumbo() JumboSheet {
	return JumboSheet{Label: "Offcut " + o.ID, Width: o.Width, Height: o.Height}
}

// MinOffcutDimension is the smallest side (mm) of a remnant worth keeping.
const MinOffcutDimension = 100.0

// MinOffcutArea is the smallest area (sq mm) of a remnant worth keeping.
const MinOffcutArea = 40000.0

// DetectOffcuts finds reusable remnants on a shelf-packed sheet: the strip
// to the right of each shelf and the strip below the last shelf.
func DetectOffcuts(sheet SheetAssignment, jumbo JumboSheet) []Offcut {
	if len(sheet.Shelves) == 0 {
		return []Offcut{newOffcut(sheet.SheetIndex, 0, 0, jumbo.Width, jumbo.Height)}
	}

	var offcuts []Offcut
	bottom := 0.0
	for _, sh := range sheet.Shelves {
		if w := jumbo.Width - sh.UsedWidth; usable(w, sh.Height) {
			offcuts = append(offcuts, newOffcut(sheet.SheetIndex, sh.UsedWidth, sh.Y, w, sh.Height))
		}
		if end := sh.Y + sh.Height; end > bottom {
			bottom = end
		}
	}
	if h := jumbo.Height - bottom; usable(jumbo.Width, h) {
		offcuts = append(offcuts, newOffcut(sheet.SheetIndex, 0, bottom, jumbo.Width, h))
	}

	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// DetectAllOffcuts finds offcuts across every sheet of a plan.
func DetectAllOffcuts(plan CuttingPlan) []Offcut {
	var all []Offcut
	for _, s := range plan.Sheets {
		all = append(all, DetectOffcuts(s, plan.Jumbo)...)
	}
	return all
}

// TotalOffcutArea returns the total area of all offcuts in sq mm.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}

func usable(w, h float64) bool {
	return w >= MinOffcutDimension && h >= MinOffcutDimension && w*h >= MinOffcutArea
}

func newOffcut(sheetIndex int, x, y, w, h float64) Offcut {
	return Offcut{
		ID:         uuid.New().String()[:8],
		SheetIndex: sheetIndex,
		X:          x,
		Y:          y,
		Width:      w,
		Height:     h,
	}
}
