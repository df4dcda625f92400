package model

// EdgeWorkLine is the edge finishing needed for one panel line.
type EdgeWorkLine struct {
	PanelID       string  `json:"panel_id"`
	Label         string  `json:"label"`
	Quantity      int     `json:"quantity"`
	PolishFtUnit  float64 `json:"polish_ft_unit"` // running ft per piece
	PolishFtTotal float64 `json:"polish_ft_total"`
	TaperFtUnit   float64 `json:"taper_ft_unit"`
	TaperFtTotal  float64 `json:"taper_ft_total"`
}

// EdgeWorkSummary totals polishing and taper edge lengths for an order.
// This is shop-floor information; billing uses the pricing package.
type EdgeWorkSummary struct {
	Lines         []EdgeWorkLine `json:"lines"`
	PolishFtTotal float64        `json:"polish_ft_total"`
	TaperFtTotal  float64        `json:"taper_ft_total"`
	PolishedCount int            `json:"polished_count"` // pieces needing polish
	TaperCount    int            `json:"taper_count"`    // pieces with a taper edge
}

// CalculateEdgeWork computes running feet of polish and taper edges for
// every panel that needs either.
func CalculateEdgeWork(panels []Panel) (EdgeWorkSummary, error) {
	summary := EdgeWorkSummary{Lines: []EdgeWorkLine{}}
	for _, p := range panels {
		polish := p.HasOp(OpPolish)
		if !polish && !p.IsTaper {
			continue
		}
		if err := p.Validate(); err != nil {
			return EdgeWorkSummary{}, err
		}

		line := EdgeWorkLine{PanelID: p.ID, Label: p.Label, Quantity: p.Quantity}
		if polish {
			w, _ := p.WidthMM()
			h, _ := p.HeightMM()
			line.PolishFtUnit = 2 * (w + h) / MMPerFoot
			line.PolishFtTotal = line.PolishFtUnit * float64(p.Quantity)
			summary.PolishedCount += p.Quantity
		}
		if p.IsTaper {
			tw, _ := p.TaperWidthMM()
			th, _ := p.TaperHeightMM()
			line.TaperFtUnit = 2 * (tw + th) / MMPerFoot
			line.TaperFtTotal = line.TaperFtUnit * float64(p.Quantity)
			summary.TaperCount += p.Quantity
		}

		summary.PolishFtTotal += line.PolishFtTotal
		summary.TaperFtTotal += line.TaperFtTotal
		summary.Lines = append(summary.Lines, line)
	}
	return summary, nil
}
