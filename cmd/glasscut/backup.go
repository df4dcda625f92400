package main

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

func backupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore config, inventory and templates",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "export [file]",
			Short: "Write all settings to one backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := project.LoadAppConfig(a.configPath)
				if err != nil {
					return err
				}
				inv, err := project.LoadInventory(a.inventoryPath)
				if err != nil {
					return err
				}
				store, err := project.LoadTemplates(a.templatePath)
				if err != nil {
					return err
				}
				if err := project.ExportAllData(args[0], cfg, inv, store); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import [file]",
			Short: "Restore settings from a backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := project.ImportAllData(args[0])
				if err != nil {
					return err
				}
				if err := project.SaveAppConfig(a.configPath, b.Config); err != nil {
					return err
				}
				if err := project.SaveInventory(a.inventoryPath, b.Inventory); err != nil {
					return err
				}
				if err := project.SaveTemplates(a.templatePath, b.Templates); err != nil {
					return err
				}
				a.log.Info("backup restored", "file", args[0], "created_at", b.CreatedAt, "version", b.Version)
				fmt.Fprintf(cmd.OutOrStdout(), "Restored backup from %s\n", b.CreatedAt)
				return nil
			},
		},
	)
	return cmd
}
