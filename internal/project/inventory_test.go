package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlassCut/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInventoryPath(t *testing.T) {
	path := DefaultInventoryPath()
	if filepath.Base(path) != "inventory.json" {
		t.Errorf("expected filename inventory.json, got %s", filepath.Base(path))
	}
	if dir := filepath.Base(filepath.Dir(path)); dir != ".glasscut" {
		t.Errorf("expected parent dir .glasscut, got %s", dir)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "inventory.json")

	inv := model.Inventory{
		Rates: []model.GlassRate{
			model.NewGlassRate(model.GlassClear, 8, decimal.NewFromInt(80)),
		},
		Jumbos: []model.JumboPreset{
			model.NewJumboPreset("Test 2000x1000", 2000, 1000),
		},
	}

	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	require.Len(t, loaded.Rates, 1)
	assert.Equal(t, inv.Rates[0].ID, loaded.Rates[0].ID)
	assert.True(t, loaded.Rates[0].Rate.Equal(decimal.NewFromInt(80)))
	require.Len(t, loaded.Jumbos, 1)
	assert.Equal(t, inv.Jumbos[0], loaded.Jumbos[0])
}

func TestLoadInventoryCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}

	defaults := model.DefaultInventory()
	assert.Len(t, inv.Rates, len(defaults.Rates))
	assert.Len(t, inv.Jumbos, len(defaults.Jumbos))

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default inventory to be written: %v", err)
	}
}

func TestImportInventory(t *testing.T) {
	dir := t.TempDir()

	shared := model.NewGlassRate(model.GlassClear, 5, decimal.NewFromInt(55))
	existing := model.Inventory{
		Rates:  []model.GlassRate{shared},
		Jumbos: []model.JumboPreset{model.NewJumboPreset("Existing", 3000, 2000)},
	}

	imported := model.Inventory{
		Rates: []model.GlassRate{
			shared,
			model.NewGlassRate(model.GlassTinted, 6, decimal.NewFromInt(90)),
		},
		Jumbos: []model.JumboPreset{model.NewJumboPreset("New", 4000, 2500)},
	}
	data, err := json.Marshal(imported)
	require.NoError(t, err)
	path := filepath.Join(dir, "import.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	merged, err := ImportInventory(path, existing)
	require.NoError(t, err)

	require.Len(t, merged.Rates, 2, "duplicate rate ID should be skipped")
	assert.Equal(t, model.GlassTinted, merged.Rates[1].GlassType)
	require.Len(t, merged.Jumbos, 2)
	assert.Equal(t, "Existing", merged.Jumbos[0].Name)
	assert.Equal(t, "New", merged.Jumbos[1].Name)
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	got, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	assert.Error(t, err)
	assert.Len(t, got.Rates, len(existing.Rates))
}
