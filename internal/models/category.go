package models

// Category groups templates for display purposes. Categories are defined once
// in the built-in catalog (or fetched from the firm's backend) and are
// immutable at runtime.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	SortOrder   int    `yaml:"sort_order,omitempty" json:"sort_order,omitempty"`
}
