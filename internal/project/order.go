package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/piwi3910/GlassCut/internal/model"
	"gopkg.in/yaml.v3"
)

// isYAML reports whether path has a YAML extension.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// SaveOrder writes an order to path as JSON, or as YAML when the path ends
// in .yaml or .yml. Parent directories are created as needed.
func SaveOrder(path string, o model.Order) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if isYAML(path) {
		if data, err = jsonToYAML(data); err != nil {
			return fmt.Errorf("failed to marshal order: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// LoadOrder reads an order written by SaveOrder or by hand. Panels without
// an ID get one. The returned sections tell which order-level sections the
// file set, so that AppConfig.Complete fills only the missing ones.
func LoadOrder(path string) (model.Order, model.OrderSections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Order{}, model.OrderSections{}, err
	}
	if isYAML(path) {
		if data, err = yamlToJSON(data); err != nil {
			return model.Order{}, model.OrderSections{}, fmt.Errorf("failed to parse order %s: %w", path, err)
		}
	}

	var o model.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return model.Order{}, model.OrderSections{}, fmt.Errorf("failed to parse order %s: %w", path, err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return model.Order{}, model.OrderSections{}, fmt.Errorf("failed to parse order %s: %w", path, err)
	}
	given := model.OrderSections{
		Rates:   isSet(keys, "rates"),
		Charges: isSet(keys, "charges"),
		Tax:     isSet(keys, "tax"),
		Jumbo:   isSet(keys, "jumbo"),
	}

	if o.ID == "" {
		o.ID = uuid.New().String()[:8]
	}
	if o.Panels == nil {
		o.Panels = []model.Panel{}
	}
	for i := range o.Panels {
		if o.Panels[i].ID == "" {
			o.Panels[i].ID = uuid.New().String()[:8]
		}
		if o.Panels[i].FabricationOps == nil {
			o.Panels[i].FabricationOps = []model.FabricationOp{}
		}
	}
	return o, given, nil
}

// isSet reports whether key is present and not null.
func isSet(keys map[string]json.RawMessage, key string) bool {
	raw, ok := keys[key]
	return ok && string(raw) != "null"
}

// The model carries JSON tags only, so YAML goes through a generic tree
// and reuses them.

func yamlToJSON(data []byte) ([]byte, error) {
	var tree interface{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

func jsonToYAML(data []byte) ([]byte, error) {
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
