package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/piwi3910/GlassCut/internal/importer"
	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

func importCmd(a *app) *cobra.Command {
	var (
		unit     string
		number   string
		customer string
	)

	cmd := &cobra.Command{
		Use:   "import [panel-list] [order-out]",
		Short: "Build an order from a CSV, Excel or DXF panel list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := importer.Options{Unit: a.cfg.DefaultUnit, Paimaish: a.cfg.DefaultPaimaish}
			if unit != "" {
				u, err := model.ParseUnit(unit)
				if err != nil {
					return err
				}
				opts.Unit = u
			}

			res, err := importPanels(args[0], opts)
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				a.log.Warn("import", "file", args[0], "warning", w)
			}
			for _, e := range res.Errors {
				a.log.Error("import", "file", args[0], "error", e)
			}
			if len(res.Panels) == 0 {
				return fmt.Errorf("no panels imported from %s", args[0])
			}

			if number == "" {
				number = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			o := model.NewOrder(number)
			o.Customer = customer
			a.cfg.ApplyToOrder(&o)
			for _, p := range res.Panels {
				o.AddPanel(p)
			}

			inv, err := project.LoadInventory(a.inventoryPath)
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}
			if missing := inv.FillRates(&o); len(missing) > 0 {
				a.log.Warn("no inventory rate for panels", "panels", missing)
			}

			if err := project.SaveOrder(args[1], o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d panels (%d rows rejected) into %s\n",
				len(res.Panels), len(res.Errors), args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "unit for rows without one and for DXF drawings")
	cmd.Flags().StringVar(&number, "number", "", "order number (default: file name)")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	return cmd
}

// importPanels picks the importer by file extension.
func importPanels(path string, opts importer.Options) (importer.ImportResult, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return importer.ImportCSV(path, opts), nil
	case ".xlsx", ".xlsm":
		return importer.ImportExcel(path, opts), nil
	case ".dxf":
		return importer.ImportDXF(path, opts), nil
	default:
		return importer.ImportResult{}, fmt.Errorf("unsupported panel list %s: want .csv, .xlsx or .dxf", path)
	}
}
