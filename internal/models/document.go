package models

import "time"

// Document is a generated document: template content with all known
// placeholders substituted. The content is an editable buffer from the
// moment of generation; later edits are not re-validated against the
// template.
type Document struct {
	ID           string    `json:"id"`
	TemplateID   string    `json:"template_id"`
	TemplateName string    `json:"template_name"`
	Content      string    `json:"content"`
	Filename     string    `json:"filename"`
	GeneratedAt  time.Time `json:"generated_at"`
}
