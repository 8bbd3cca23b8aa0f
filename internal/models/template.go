package models

import (
	"fmt"
	"strings"
	"time"
)

// Template is a document skeleton containing {{key}} placeholder tokens.
// The custom-field schema is attached directly to the template so the
// placeholder contract and the form definition cannot drift apart.
type Template struct {
	// Frontmatter fields
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Category  string        `yaml:"category"`
	Summary   string        `yaml:"description,omitempty"`
	Fields    []CustomField `yaml:"fields,omitempty"`
	CreatedAt time.Time     `yaml:"created_at,omitempty"`
	UpdatedAt time.Time     `yaml:"updated_at,omitempty"`

	// Content fields
	Content  string `yaml:"-"` // Document body after frontmatter
	FilePath string `yaml:"-"` // Path to the file, empty for built-in templates
}

// CustomField is a template-specific input definition beyond the standard
// client fields. Its ID matches a placeholder key in the template content.
type CustomField struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool   `yaml:"required" json:"required"`
}

// Implement list.Item interface for the bubbles list component

// FilterValue returns the value used for filtering in lists
func (t Template) FilterValue() string {
	return cleanString(t.Name)
}

// Title satisfies the list.Item interface
func (t Template) Title() string {
	if t.Name != "" {
		return cleanString(t.Name)
	}
	return cleanString(t.ID)
}

// Description satisfies the list.DefaultItem interface
func (t Template) Description() string {
	var parts []string

	if t.Summary != "" {
		summary := cleanString(t.Summary)
		const maxLen = 60
		if len(summary) > maxLen {
			summary = summary[:maxLen-3] + "..."
		}
		parts = append(parts, summary)
	}

	switch n := len(t.Fields); {
	case n == 1:
		parts = append(parts, "1 extra field")
	case n > 1:
		parts = append(parts, fmt.Sprintf("%d extra fields", n))
	}

	return strings.Join(parts, " • ")
}

// cleanString removes control characters that could break list rendering
func cleanString(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			b.WriteByte(' ')
		} else if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}
