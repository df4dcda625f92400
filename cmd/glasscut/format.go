package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/piwi3910/GlassCut/internal/engine"
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/pricing"
)

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printTotals(w io.Writer, o model.Order, t pricing.Totals) {
	fmt.Fprintf(w, "Order %s", o.Number)
	if o.Customer != "" {
		fmt.Fprintf(w, " for %s", o.Customer)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	tw := newTable(w)
	fmt.Fprintln(tw, "Panel\tQty\tSq ft\tRate\tAmount\tFabrication")
	for _, l := range t.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\t%s\t%s\n",
			l.Label, l.Quantity, l.Area, l.Rate.StringFixed(2), l.Amount.StringFixed(2), l.Fabrication.StringFixed(2))
	}
	tw.Flush()
	fmt.Fprintln(w)

	tw = newTable(w)
	fmt.Fprintf(tw, "Total area\t%.4f sq ft\n", t.TotalArea)
	fmt.Fprintf(tw, "Glass cost\t%s\n", t.GlassCost.StringFixed(2))
	fmt.Fprintf(tw, "Fabrication\t%s\n", t.FabCharges.StringFixed(2))
	if !t.WastageCharge.IsZero() {
		fmt.Fprintf(tw, "  of which wastage\t%s\n", t.WastageCharge.StringFixed(2))
	}
	fmt.Fprintf(tw, "Flat charges\t%s\n", t.FlatCharges.StringFixed(2))
	fmt.Fprintf(tw, "Subtotal\t%s\n", t.Subtotal.StringFixed(2))
	if t.TaxMode == model.TaxInterState {
		fmt.Fprintf(tw, "IGST %s%%\t%s\n", t.TaxRate.String(), t.TaxBreakdown.IGST.StringFixed(2))
	} else {
		fmt.Fprintf(tw, "CGST\t%s\n", t.TaxBreakdown.CGST.StringFixed(2))
		fmt.Fprintf(tw, "SGST\t%s\n", t.TaxBreakdown.SGST.StringFixed(2))
	}
	fmt.Fprintf(tw, "Grand total\t%s\n", t.GrandTotal.StringFixed(2))
	tw.Flush()
	fmt.Fprintln(w, t.AmountInWords)
}

func printPlan(w io.Writer, r planReport) {
	p := r.Plan
	fmt.Fprintf(w, "%s: %d pieces on %d sheets, %.2f%% waste\n",
		p.Jumbo.Label, p.PlacementCount(), p.Summary.TotalSheets, p.Summary.WastePercent)

	for _, s := range p.Sheets {
		fmt.Fprintf(w, "\nSheet %d (%.1f%% used)\n", s.SheetIndex+1, s.Efficiency(p.Jumbo))
		tw := newTable(w)
		fmt.Fprintln(tw, "Panel\tX\tY\tW\tH")
		for _, pl := range s.Placements {
			fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\n", pl.Label, pl.X, pl.Y, pl.Width, pl.Height)
		}
		tw.Flush()
	}

	if len(r.Offcuts) > 0 {
		fmt.Fprintln(w, "\nReusable offcuts")
		tw := newTable(w)
		fmt.Fprintln(tw, "Sheet\tX\tY\tW\tH")
		for _, oc := range r.Offcuts {
			fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%g\n", oc.SheetIndex+1, oc.X, oc.Y, oc.Width, oc.Height)
		}
		tw.Flush()
	}

	if r.EdgeWork.PolishedCount > 0 || r.EdgeWork.TaperCount > 0 {
		fmt.Fprintf(w, "\nEdge work: %.2f ft polish on %d pieces, %.2f ft taper on %d pieces\n",
			r.EdgeWork.PolishFtTotal, r.EdgeWork.PolishedCount, r.EdgeWork.TaperFtTotal, r.EdgeWork.TaperCount)
	}

	e := r.Estimate
	fmt.Fprintf(w, "\nArea estimate: %.2f sheets minimum, %d with %g%% waste", e.SheetsNeededExact, e.SheetsWithWaste, e.WastePercent)
	if !e.EstimatedCost.IsZero() {
		fmt.Fprintf(w, ", cost %s", e.EstimatedCost.StringFixed(2))
	}
	fmt.Fprintln(w)
}

func printComparison(w io.Writer, results []engine.ComparisonResult, best engine.ComparisonResult, ok bool) {
	tw := newTable(w)
	fmt.Fprintln(tw, "Jumbo\tSheets\tWaste %")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t-\t%v\n", r.Jumbo.Label, r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", r.Jumbo.Label, r.SheetsUsed, r.WastePercent)
	}
	tw.Flush()
	if ok {
		fmt.Fprintf(w, "\nBest: %s\n", best.Jumbo.Label)
	}
}

func printBatch(w io.Writer, results []batchResult) {
	tw := newTable(w)
	fmt.Fprintln(tw, "File\tOrder\tSubtotal\tTax\tGrand total")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Path, r.Number,
			r.Totals.Subtotal.StringFixed(2), r.Totals.TaxAmount.StringFixed(2), r.Totals.GrandTotal.StringFixed(2))
	}
	tw.Flush()
}

func printTemplates(w io.Writer, templates []model.OrderTemplate) {
	if len(templates) == 0 {
		fmt.Fprintln(w, "No templates")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tPanels\tDescription")
	for _, t := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", t.ID, t.Name, len(t.Panels), t.Description)
	}
	tw.Flush()
}

func printInventory(w io.Writer, inv model.Inventory) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tGlass\tThickness\tRate/sq ft")
	for _, r := range inv.Rates {
		thickness := "any"
		if r.ThicknessMM != 0 {
			thickness = fmt.Sprintf("%g mm", r.ThicknessMM)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.GlassType, thickness, r.Rate.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "ID\tJumbo\tW\tH")
	for _, j := range inv.Jumbos {
		fmt.Fprintf(tw, "%s\t%s\t%g\t%g\n", j.ID, j.Name, j.Width, j.Height)
	}
	tw.Flush()
}
