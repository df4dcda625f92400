package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/piwi3910/GlassCut/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.glasscut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".glasscut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentOrders == nil {
		config.RecentOrders = []string{}
	}
	return config, nil
}

// EnvOverrides are the environment variables that override the config file.
// Zero values leave the file setting in place.
type EnvOverrides struct {
	Env         string  `env:"GLASSCUT_ENV" env-description:"log format: local, dev or prod"`
	JumboWidth  float64 `env:"GLASSCUT_JUMBO_WIDTH" env-description:"default jumbo sheet width in mm"`
	JumboHeight float64 `env:"GLASSCUT_JUMBO_HEIGHT" env-description:"default jumbo sheet height in mm"`
	DefaultUnit string  `env:"GLASSCUT_DEFAULT_UNIT" env-description:"unit for new panels: mm, in or ft"`
	TaxMode     string  `env:"GLASSCUT_TAX_MODE" env-description:"intra or inter"`
}

// ReadEnvOverrides reads EnvOverrides from the process environment.
func ReadEnvOverrides() (EnvOverrides, error) {
	var o EnvOverrides
	if err := cleanenv.ReadEnv(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("read environment: %w", err)
	}
	return o, nil
}

// Apply copies every set override into cfg.
func (o EnvOverrides) Apply(cfg *model.AppConfig) error {
	if o.Env != "" {
		cfg.Env = o.Env
	}
	if o.JumboWidth < 0 || o.JumboHeight < 0 {
		return fmt.Errorf("%w: jumbo %gx%g", model.ErrInvalidDimension, o.JumboWidth, o.JumboHeight)
	}
	if o.JumboWidth > 0 {
		cfg.DefaultJumbo.Width = o.JumboWidth
	}
	if o.JumboHeight > 0 {
		cfg.DefaultJumbo.Height = o.JumboHeight
	}
	if o.JumboWidth > 0 || o.JumboHeight > 0 {
		cfg.DefaultJumbo.Label = fmt.Sprintf("Jumbo %gx%g", cfg.DefaultJumbo.Width, cfg.DefaultJumbo.Height)
	}
	if o.DefaultUnit != "" {
		u, err := model.ParseUnit(o.DefaultUnit)
		if err != nil {
			return fmt.Errorf("GLASSCUT_DEFAULT_UNIT: %w", err)
		}
		cfg.DefaultUnit = u
	}
	switch model.TaxMode(o.TaxMode) {
	case "":
	case model.TaxIntraState, model.TaxInterState:
		cfg.DefaultTax.Mode = model.TaxMode(o.TaxMode)
	default:
		return fmt.Errorf("GLASSCUT_TAX_MODE: unknown mode %q", o.TaxMode)
	}
	return nil
}

// ApplyEnv reads the environment and applies it to cfg.
func ApplyEnv(cfg *model.AppConfig) error {
	o, err := ReadEnvOverrides()
	if err != nil {
		return err
	}
	return o.Apply(cfg)
}
