package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected filename config.json, got %s", filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != ".glasscut" {
		t.Errorf("expected parent dir .glasscut, got %s", filepath.Dir(path))
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultUnit = model.UnitInch
	cfg.DefaultPaimaish = 0.25
	cfg.DefaultRates.Drilling = decimal.NewFromInt(40)
	cfg.RecentOrders = []string{"/tmp/o1.json", "/tmp/o2.yaml"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultUnit != model.UnitInch {
		t.Errorf("expected DefaultUnit=in, got %s", loaded.DefaultUnit)
	}
	if loaded.DefaultPaimaish != 0.25 {
		t.Errorf("expected DefaultPaimaish=0.25, got %f", loaded.DefaultPaimaish)
	}
	assert.True(t, loaded.DefaultRates.Drilling.Equal(decimal.NewFromInt(40)))
	if len(loaded.RecentOrders) != 2 {
		t.Errorf("expected 2 recent orders, got %d", len(loaded.RecentOrders))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	assert.Equal(t, defaults.DefaultJumbo, cfg.DefaultJumbo)
	assert.Equal(t, defaults.DefaultUnit, cfg.DefaultUnit)
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_unit": "ft"}`), 0644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, model.UnitFoot, cfg.DefaultUnit)
	assert.Equal(t, model.DefaultJumbo(), cfg.DefaultJumbo)
	assert.NotNil(t, cfg.RecentOrders)
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GLASSCUT_ENV", "local")
	t.Setenv("GLASSCUT_JUMBO_WIDTH", "3660")
	t.Setenv("GLASSCUT_JUMBO_HEIGHT", "2440")
	t.Setenv("GLASSCUT_DEFAULT_UNIT", "in")
	t.Setenv("GLASSCUT_TAX_MODE", "inter")

	cfg := model.DefaultAppConfig()
	require.NoError(t, ApplyEnv(&cfg))

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 3660.0, cfg.DefaultJumbo.Width)
	assert.Equal(t, 2440.0, cfg.DefaultJumbo.Height)
	assert.Equal(t, "Jumbo 3660x2440", cfg.DefaultJumbo.Label)
	assert.Equal(t, model.UnitInch, cfg.DefaultUnit)
	assert.Equal(t, model.TaxInterState, cfg.DefaultTax.Mode)
}

func TestApplyEnvUnsetLeavesConfig(t *testing.T) {
	for _, k := range []string{"GLASSCUT_ENV", "GLASSCUT_JUMBO_WIDTH", "GLASSCUT_JUMBO_HEIGHT", "GLASSCUT_DEFAULT_UNIT", "GLASSCUT_TAX_MODE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg := model.DefaultAppConfig()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestEnvOverridesApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		o    EnvOverrides
	}{
		{"bad unit", EnvOverrides{DefaultUnit: "cubits"}},
		{"bad tax mode", EnvOverrides{TaxMode: "vat"}},
		{"negative jumbo", EnvOverrides{JumboWidth: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := model.DefaultAppConfig()
			assert.Error(t, tt.o.Apply(&cfg))
		})
	}
}

func TestEnvOverridesApplyUnitAlias(t *testing.T) {
	cfg := model.DefaultAppConfig()
	require.NoError(t, EnvOverrides{DefaultUnit: `"`}.Apply(&cfg))
	assert.Equal(t, model.UnitInch, cfg.DefaultUnit)
}
