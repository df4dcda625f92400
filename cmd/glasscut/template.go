package main

import (
	"fmt"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

func templateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable order templates",
	}
	cmd.AddCommand(templateSaveCmd(a), templateListCmd(a), templateNewCmd(a))
	return cmd
}

func templateSaveCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "save [order-file] [name]",
		Short: "Store an order as a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.loadOrder(args[0])
			if err != nil {
				return err
			}
			store, err := project.LoadTemplates(a.templatePath)
			if err != nil {
				return err
			}
			if store.FindByName(args[1]) != nil {
				return fmt.Errorf("template %q already exists", args[1])
			}
			t := model.NewOrderTemplate(args[1], description, o)
			store.Add(t)
			if err := project.SaveTemplates(a.templatePath, store); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %s (%s)\n", t.Name, t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "template description")
	return cmd
}

func templateListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := project.LoadTemplates(a.templatePath)
			if err != nil {
				return err
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), store.Templates)
			}
			printTemplates(cmd.OutOrStdout(), store.Templates)
			return nil
		},
	}
}

func templateNewCmd(a *app) *cobra.Command {
	var number string

	cmd := &cobra.Command{
		Use:   "new [name] [order-out]",
		Short: "Start a new order from a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(a.templatePath)
			if err != nil {
				return err
			}
			t := store.FindByName(args[0])
			if t == nil {
				t = store.FindByID(args[0])
			}
			if t == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			o := t.ToOrder(number)
			if err := project.SaveOrder(args[1], o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created order %s with %d panels in %s\n", o.ID, len(o.Panels), args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "order number")
	return cmd
}
