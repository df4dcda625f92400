package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlassCut/internal/model"
)

// DefaultInventoryPath returns the default file path for the inventory file.
// This is located at ~/.glasscut/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveInventory(path string, inv model.Inventory) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInventory reads the inventory from the specified JSON file.
// If the file does not exist, it returns the default inventory and saves it.
func LoadInventory(path string) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			inv := model.DefaultInventory()
			if saveErr := SaveInventory(path, inv); saveErr != nil {
				return inv, saveErr
			}
			return inv, nil
		}
		return model.Inventory{}, err
	}
	var inv model.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return model.Inventory{}, err
	}
	return inv, nil
}

// ImportInventory imports an inventory from a user-specified JSON file,
// merging it with the existing inventory. Duplicate IDs are skipped.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Inventory
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	rateIDs := make(map[string]bool, len(existing.Rates))
	for _, r := range existing.Rates {
		rateIDs[r.ID] = true
	}
	jumboIDs := make(map[string]bool, len(existing.Jumbos))
	for _, j := range existing.Jumbos {
		jumboIDs[j.ID] = true
	}

	for _, r := range imported.Rates {
		if !rateIDs[r.ID] {
			existing.Rates = append(existing.Rates, r)
			rateIDs[r.ID] = true
		}
	}
	for _, j := range imported.Jumbos {
		if !jumboIDs[j.ID] {
			existing.Jumbos = append(existing.Jumbos, j)
			jumboIDs[j.ID] = true
		}
	}

	return existing, nil
}
