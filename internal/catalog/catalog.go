// Package catalog provides the built-in document template catalog for the
// firm's service lines: tax filing, bookkeeping, translation, immigration
// and notary work. User templates loaded from disk or fetched from the
// backend are merged on top of the built-ins.
package catalog

import (
	"sort"

	"github.com/draftkit/draftkit/internal/models"
)

// Catalog is an immutable snapshot of categories and templates.
type Catalog struct {
	categories []models.Category
	templates  []*models.Template
	byID       map[string]*models.Template
}

// New builds a catalog from the given categories and templates. Templates
// referencing unknown categories are kept; they simply never show up when
// filtering by category.
func New(categories []models.Category, templates []*models.Template) *Catalog {
	sorted := make([]models.Category, len(categories))
	copy(sorted, categories)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})

	byID := make(map[string]*models.Template, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	return &Catalog{
		categories: sorted,
		templates:  templates,
		byID:       byID,
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(builtinCategories, builtinTemplates)
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Templates returns the full unfiltered template list.
func (c *Catalog) Templates() []*models.Template {
	return c.templates
}

// TemplatesByCategory returns the templates belonging to a category. An
// unknown or empty category yields an empty slice, never an error.
func (c *Catalog) TemplatesByCategory(categoryID string) []*models.Template {
	var out []*models.Template
	for _, t := range c.templates {
		if t.Category == categoryID {
			out = append(out, t)
		}
	}
	return out
}

// Template looks up a template by ID.
func (c *Catalog) Template(id string) (*models.Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// FieldsFor returns the custom fields registered for a template ID. This is
// the keyed-lookup shape older callers expect; the schema itself lives on
// the Template record.
func (c *Catalog) FieldsFor(templateID string) []models.CustomField {
	if t, ok := c.byID[templateID]; ok {
		return t.Fields
	}
	return nil
}

// Merge returns a new catalog with extra templates layered on top. A
// template whose ID matches a built-in replaces it.
func (c *Catalog) Merge(extra []*models.Template) *Catalog {
	merged := make([]*models.Template, 0, len(c.templates)+len(extra))
	replaced := make(map[string]bool, len(extra))
	for _, t := range extra {
		replaced[t.ID] = true
	}
	for _, t := range c.templates {
		if !replaced[t.ID] {
			merged = append(merged, t)
		}
	}
	merged = append(merged, extra...)
	return New(c.categories, merged)
}
