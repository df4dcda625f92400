package main

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/engine"
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func quoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quote [order-file]",
		Short: "Price an order and print the invoice totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.loadOrder(args[0])
			if err != nil {
				return err
			}
			totals, err := quoteOrder(o)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), totals)
			}
			printTotals(cmd.OutOrStdout(), o, totals)
			return nil
		},
	}
}

// quoteOrder prices o. The cutting plan is only needed when the order
// bills jumbo waste.
func quoteOrder(o model.Order) (pricing.Totals, error) {
	var plan *model.CuttingPlan
	if !o.Rates.Wastage.IsZero() && len(o.Panels) > 0 {
		pieces, err := pricing.CutList(o)
		if err != nil {
			return pricing.Totals{}, err
		}
		p, err := engine.Pack(pieces, o.Jumbo)
		if err != nil {
			return pricing.Totals{}, err
		}
		plan = &p
	}
	return pricing.ComputeOrderTotals(o, plan)
}

func wordsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words [amount]",
		Short: "Spell an amount in Indian English words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), pricing.NumberToWords(amount))
			return nil
		},
	}
}
