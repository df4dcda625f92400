package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/GlassCut/internal/engine"
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/pricing"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var sizes []string

	cmd := &cobra.Command{
		Use:   "compare [order-file]",
		Short: "Pack an order on several jumbo sizes and pick the best",
		Long: "Pack an order on several jumbo sizes and pick the one using the fewest sheets.\n" +
			"Without --jumbo the inventory's jumbo presets are compared.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.loadOrder(args[0])
			if err != nil {
				return err
			}
			jumbos, err := a.compareJumbos(sizes)
			if err != nil {
				return err
			}
			pieces, err := pricing.CutList(o)
			if err != nil {
				return err
			}

			results := engine.CompareJumbos(pieces, jumbos)
			best, ok := engine.BestJumbo(results)
			for _, r := range results {
				if r.Err != nil {
					a.log.Debug("jumbo rejected", "jumbo", r.Jumbo.Label, "err", r.Err)
				}
			}

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), comparisonJSON(results, best, ok))
			}
			printComparison(cmd.OutOrStdout(), results, best, ok)
			if !ok {
				return fmt.Errorf("no jumbo size fits every panel")
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sizes, "jumbo", nil, "jumbo size as WxH in mm or a preset name (repeatable)")
	return cmd
}

func (a *app) compareJumbos(sizes []string) ([]model.JumboSheet, error) {
	inv, err := project.LoadInventory(a.inventoryPath)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	if len(sizes) > 0 {
		jumbos := make([]model.JumboSheet, 0, len(sizes))
		for _, s := range sizes {
			j, err := resolveJumbo(s, inv)
			if err != nil {
				return nil, err
			}
			jumbos = append(jumbos, j)
		}
		return jumbos, nil
	}

	if len(inv.Jumbos) == 0 {
		return nil, fmt.Errorf("inventory has no jumbo presets; pass --jumbo")
	}
	jumbos := make([]model.JumboSheet, len(inv.Jumbos))
	for i, p := range inv.Jumbos {
		jumbos[i] = p.ToJumbo()
	}
	return jumbos, nil
}

// resolveJumbo accepts a WxH size in mm or the name or ID of an inventory
// preset.
func resolveJumbo(s string, inv model.Inventory) (model.JumboSheet, error) {
	if p := inv.FindJumboByName(strings.TrimSpace(s)); p != nil {
		return p.ToJumbo(), nil
	}
	if p := inv.FindJumboByID(strings.TrimSpace(s)); p != nil {
		return p.ToJumbo(), nil
	}
	j, err := parseJumbo(s)
	if err != nil {
		return model.JumboSheet{}, fmt.Errorf("%w (presets: %s)", err, strings.Join(inv.JumboNames(), ", "))
	}
	return j, nil
}

// parseJumbo parses "6000x3300" (mm, width first).
func parseJumbo(s string) (model.JumboSheet, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return model.JumboSheet{}, fmt.Errorf("invalid jumbo size %q: want WxH", s)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return model.JumboSheet{}, fmt.Errorf("%w: jumbo size %q", model.ErrInvalidDimension, s)
	}
	return model.JumboSheet{Label: fmt.Sprintf("Jumbo %gx%g", w, h), Width: w, Height: h}, nil
}

type comparisonRow struct {
	Jumbo        model.JumboSheet `json:"jumbo"`
	SheetsUsed   int              `json:"sheets_used"`
	WastePercent float64          `json:"waste_percent"`
	Error        string           `json:"error,omitempty"`
}

type comparisonOut struct {
	Results []comparisonRow   `json:"results"`
	Best    *model.JumboSheet `json:"best"`
}

func comparisonJSON(results []engine.ComparisonResult, best engine.ComparisonResult, ok bool) comparisonOut {
	out := comparisonOut{Results: make([]comparisonRow, len(results))}
	for i, r := range results {
		row := comparisonRow{Jumbo: r.Jumbo, SheetsUsed: r.SheetsUsed, WastePercent: r.WastePercent}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		out.Results[i] = row
	}
	if ok {
		out.Best = &best.Jumbo
	}
	return out
}
