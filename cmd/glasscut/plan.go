package main

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/engine"
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/pricing"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// planReport is everything the plan command prints.
type planReport struct {
	Plan     model.CuttingPlan      `json:"plan"`
	Offcuts  []model.Offcut         `json:"offcuts"`
	Estimate model.PurchaseEstimate `json:"estimate"`
	EdgeWork model.EdgeWorkSummary  `json:"edge_work"`
}

func planCmd(a *app) *cobra.Command {
	var (
		jumbo      string
		sheetPrice string
	)

	cmd := &cobra.Command{
		Use:   "plan [order-file]",
		Short: "Lay out an order's panels on jumbo sheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.loadOrder(args[0])
			if err != nil {
				return err
			}
			if jumbo != "" {
				inv, err := project.LoadInventory(a.inventoryPath)
				if err != nil {
					return fmt.Errorf("load inventory: %w", err)
				}
				if o.Jumbo, err = resolveJumbo(jumbo, inv); err != nil {
					return err
				}
			}
			price, err := decimal.NewFromString(sheetPrice)
			if err != nil {
				return fmt.Errorf("invalid --sheet-price %q: %w", sheetPrice, err)
			}

			report, err := buildPlan(o, a.cfg.WastePercent, price)
			if err != nil {
				return err
			}
			a.log.Info("plan built",
				"order", o.Number,
				"sheets", report.Plan.Summary.TotalSheets,
				"waste_pct", report.Plan.Summary.WastePercent,
			)

			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printPlan(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&jumbo, "jumbo", "", "jumbo sheet as WxH in mm or a preset name (default: the order's)")
	cmd.Flags().StringVar(&sheetPrice, "sheet-price", "0", "price of one jumbo sheet for the purchase estimate")
	return cmd
}

func buildPlan(o model.Order, wastePercent float64, sheetPrice decimal.Decimal) (planReport, error) {
	pieces, err := pricing.CutList(o)
	if err != nil {
		return planReport{}, err
	}
	plan, err := engine.Pack(pieces, o.Jumbo)
	if err != nil {
		return planReport{}, err
	}
	if err := engine.VerifyPlan(plan, pieces); err != nil {
		return planReport{}, err
	}
	edge, err := pricing.EdgeWork(o)
	if err != nil {
		return planReport{}, err
	}
	return planReport{
		Plan:     plan,
		Offcuts:  model.DetectAllOffcuts(plan),
		Estimate: model.EstimatePurchase(pieces, o.Jumbo, wastePercent, sheetPrice),
		EdgeWork: edge,
	}, nil
}
