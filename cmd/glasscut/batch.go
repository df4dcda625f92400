package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/piwi3910/GlassCut/internal/pricing"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// batchResult is one priced order of a batch run.
type batchResult struct {
	Path   string         `json:"path"`
	Number string         `json:"number"`
	Totals pricing.Totals `json:"totals"`
}

func batchCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch [order-file]...",
		Short: "Quote many orders concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.quoteBatch(cmd.Context(), args, jobs)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			printBatch(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "orders priced at once")
	return cmd
}

// quoteBatch prices every order file. Results keep the argument order; the
// first failing order cancels the rest.
func (a *app) quoteBatch(ctx context.Context, paths []string, jobs int) ([]batchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs < 1 {
		jobs = 1
	}

	inv, err := project.LoadInventory(a.inventoryPath)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	results := make([]batchResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := a.loadOrderWith(path, inv)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			totals, err := quoteOrder(o)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = batchResult{Path: path, Number: o.Number, Totals: totals}
			a.log.Debug("order priced", "path", path, "grand_total", totals.GrandTotal.StringFixed(2))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.Info("batch priced", "orders", len(paths), "jobs", jobs)
	return results, nil
}
