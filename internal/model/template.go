package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderTemplate is a reusable order layout: panels and rate tables without
// customer or numbering.
type OrderTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
	Panels      []Panel          `json:"panels"`
	Rates       FabricationRates `json:"rates"`
	Charges     FlatCharges      `json:"charges"`
	Tax         TaxConfig        `json:"tax"`
	Jumbo       JumboSheet       `json:"jumbo"`
}

// NewOrderTemplate creates a template from an order.
func NewOrderTemplate(name, description string, o Order) OrderTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return OrderTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Panels:      copyPanels(o.Panels),
		Rates:       o.Rates,
		Charges:     o.Charges,
		Tax:         o.Tax,
		Jumbo:       o.Jumbo,
	}
}

// ToOrder creates a new Order from this template.
// Panels get fresh IDs so they are independent of the template.
func (t OrderTemplate) ToOrder(number string) Order {
	o := NewOrder(number)
	o.Rates = t.Rates
	o.Charges = t.Charges
	o.Tax = t.Tax
	o.Jumbo = t.Jumbo
	for _, p := range copyPanels(t.Panels) {
		p.ID = ""
		o.AddPanel(p)
	}
	return o
}

// TemplateStore holds a collection of order templates.
type TemplateStore struct {
	Templates []OrderTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []OrderTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t OrderTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *OrderTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// copyPanels deep-copies panels, including their op slices.
func copyPanels(panels []Panel) []Panel {
	if panels == nil {
		return []Panel{}
	}
	cp := make([]Panel, len(panels))
	for i, p := range panels {
		p.FabricationOps = append([]FabricationOp{}, p.FabricationOps...)
		cp[i] = p
	}
	return cp
}
