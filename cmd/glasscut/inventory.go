package main

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

func inventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Show or extend glass rates and jumbo presets",
	}
	cmd.AddCommand(inventoryListCmd(a), inventoryImportCmd(a))
	return cmd
}

func inventoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List glass rates and jumbo presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := project.LoadInventory(a.inventoryPath)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), inv)
			}
			printInventory(cmd.OutOrStdout(), inv)
			return nil
		},
	}
}

func inventoryImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Merge rates and presets from another inventory file",
		Long:  "Merge rates and presets from another inventory file. Entries whose ID is already present are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := project.LoadInventory(a.inventoryPath)
			if err != nil {
				return err
			}
			before := len(inv.Rates) + len(inv.Jumbos)
			merged, err := project.ImportInventory(args[0], inv)
			if err != nil {
				return fmt.Errorf("import inventory %s: %w", args[0], err)
			}
			if err := project.SaveInventory(a.inventoryPath, merged); err != nil {
				return err
			}
			added := len(merged.Rates) + len(merged.Jumbos) - before
			a.log.Info("inventory merged", "file", args[0], "added", added)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d entries from %s\n", added, args[0])
			return nil
		},
	}
}
