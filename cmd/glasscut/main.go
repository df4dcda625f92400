package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/piwi3910/GlassCut/internal/project"
	"github.com/spf13/cobra"
)

// app carries the state shared by all commands.
type app struct {
	configPath    string
	inventoryPath string
	templatePath  string
	jsonOut       bool

	cfg model.AppConfig
	log *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.Default()}

	rootCmd := &cobra.Command{
		Use:           "glasscut",
		Short:         "Glass sizing, pricing and cutting-layout engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", project.DefaultConfigPath(), "application config file")
	flags.StringVar(&a.inventoryPath, "inventory", project.DefaultInventoryPath(), "glass rate and jumbo inventory file")
	flags.StringVar(&a.templatePath, "templates", project.DefaultTemplatePath(), "order template store")
	flags.BoolVar(&a.jsonOut, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		quoteCmd(a),
		planCmd(a),
		compareCmd(a),
		wordsCmd(a),
		batchCmd(a),
		importCmd(a),
		templateCmd(a),
		inventoryCmd(a),
		backupCmd(a),
	)
	return rootCmd
}

// init loads the config file, applies environment overrides and builds
// the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := project.LoadAppConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", a.configPath, err)
	}
	if err := project.ApplyEnv(&cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = setupLogger(cfg.Env, cmd.ErrOrStderr())
	a.log.Debug("config loaded", "path", a.configPath, "env", cfg.Env, "jumbo", cfg.DefaultJumbo.Label)
	return nil
}

// loadOrder reads an order file, fills what the file left out from config
// and takes zero panel rates from the inventory.
func (a *app) loadOrder(path string) (model.Order, error) {
	inv, err := project.LoadInventory(a.inventoryPath)
	if err != nil {
		return model.Order{}, fmt.Errorf("load inventory: %w", err)
	}
	return a.loadOrderWith(path, inv)
}

func (a *app) loadOrderWith(path string, inv model.Inventory) (model.Order, error) {
	o, given, err := project.LoadOrder(path)
	if err != nil {
		return model.Order{}, err
	}
	a.cfg.Complete(&o, given)
	if missing := inv.FillRates(&o); len(missing) > 0 {
		a.log.Warn("no inventory rate for panels", "order", o.Number, "panels", missing)
	}
	return o, nil
}
