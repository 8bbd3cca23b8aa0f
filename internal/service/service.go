// Package service provides the business logic for the document generation
// pipeline: catalog access, client info validation, placeholder substitution
// and the two export side effects (clipboard copy, file export).
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/draftkit/draftkit/internal/catalog"
	"github.com/draftkit/draftkit/internal/clipboard"
	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/remote"
	"github.com/draftkit/draftkit/internal/renderer"
	"github.com/draftkit/draftkit/internal/storage"
	"github.com/draftkit/draftkit/internal/validation"
)

// Service wires the built-in catalog, the local library and the optional
// backend into one API consumed by the TUI, CLI and HTTP server.
type Service struct {
	storage *storage.Storage
	catalog *catalog.Catalog
	backend *remote.Client // nil when no backend is configured
}

// NewService creates a service over the given storage. User templates found
// in the library are merged over the built-in catalog; a broken library
// only logs a warning because the built-ins always work.
func NewService(store *storage.Storage, backend *remote.Client) (*Service, error) {
	if store == nil {
		var err error
		store, err = storage.NewStorage("")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	svc := &Service{
		storage: store,
		catalog: catalog.Default(),
		backend: backend,
	}
	svc.reloadLocalTemplates()
	return svc, nil
}

// InitLibrary initializes the local library directory tree.
func (s *Service) InitLibrary() error {
	return s.storage.InitLibrary()
}

// Storage exposes the underlying storage, used by the HTTP server for export.
func (s *Service) Storage() *storage.Storage {
	return s.storage
}

func (s *Service) reloadLocalTemplates() {
	userTemplates, err := s.storage.ListTemplates()
	if err != nil || len(userTemplates) == 0 {
		return
	}
	s.catalog = catalog.Default().Merge(userTemplates)
}

// ListCategories returns all template categories in display order.
func (s *Service) ListCategories() []models.Category {
	return s.catalog.Categories()
}

// ListTemplates returns the full unfiltered template list.
func (s *Service) ListTemplates() []*models.Template {
	return s.catalog.Templates()
}

// TemplatesByCategory returns the templates for one category; an unknown
// category is an empty list, not an error.
func (s *Service) TemplatesByCategory(categoryID string) []*models.Template {
	return s.catalog.TemplatesByCategory(categoryID)
}

// Template looks up a template by ID.
func (s *Service) Template(id string) (*models.Template, error) {
	if t, ok := s.catalog.Template(id); ok {
		return t, nil
	}
	return nil, errors.NotFoundError(fmt.Sprintf("Template '%s'", id))
}

// CustomFields returns the custom fields registered for a template.
func (s *Service) CustomFields(templateID string) ([]models.CustomField, error) {
	if _, ok := s.catalog.Template(templateID); !ok {
		return nil, errors.NotFoundError(fmt.Sprintf("Template '%s'", templateID))
	}
	return s.catalog.FieldsFor(templateID), nil
}

// SearchTemplates fuzzy-matches templates by name and summary.
func (s *Service) SearchTemplates(query string) []*models.Template {
	templates := s.catalog.Templates()
	if strings.TrimSpace(query) == "" {
		return templates
	}

	haystack := make([]string, len(templates))
	for i, t := range templates {
		haystack[i] = t.Name + " " + t.Summary
	}

	matches := fuzzy.Find(query, haystack)
	results := make([]*models.Template, 0, len(matches))
	for _, m := range matches {
		results = append(results, templates[m.Index])
	}
	return results
}

// GenerateDocument validates the client info against the template's field
// schema and, when valid, produces a Document with every known placeholder
// substituted. A failed validation is not an error return: the per-field
// result is handed back so callers can surface inline messages.
func (s *Service) GenerateDocument(templateID string, info models.ClientInfo) (*models.Document, *validation.Result, error) {
	tmpl, err := s.Template(templateID)
	if err != nil {
		return nil, nil, err
	}

	result := validation.ValidateClientInfo(info, tmpl.Fields)
	if !result.Valid {
		return nil, result, nil
	}

	content := renderer.NewRenderer(tmpl, info).RenderText()
	doc := &models.Document{
		ID:           uuid.NewString(),
		TemplateID:   tmpl.ID,
		TemplateName: tmpl.Name,
		Content:      content,
		Filename:     renderer.ExportFilename(tmpl.Name, info.Get(models.FieldLastName), ""),
		GeneratedAt:  time.Now(),
	}
	return doc, result, nil
}

// CopyDocument copies the document buffer to the system clipboard and
// returns a status message. Failure comes back as an export-category
// AppError; nothing panics and no retry is attempted.
func (s *Service) CopyDocument(doc *models.Document) (string, error) {
	msg, err := clipboard.CopyWithFallback(doc.Content)
	if err != nil {
		return "", errors.ClipboardError(err)
	}
	return msg, nil
}

// ExportDocument writes the document into the exports directory, applying a
// filename override when given, and returns the written path.
func (s *Service) ExportDocument(doc *models.Document, filenameOverride string) (string, error) {
	if strings.TrimSpace(filenameOverride) != "" {
		doc.Filename = renderer.ExportFilename(doc.TemplateName, "", filenameOverride)
	}
	path, err := s.storage.SaveDocument(doc)
	if err != nil {
		return "", errors.ExportError(doc.Filename, err)
	}
	return path, nil
}

// SaveTemplate persists a user template into the local library and reloads
// the catalog so it becomes visible immediately.
func (s *Service) SaveTemplate(tmpl *models.Template) error {
	if tmpl.ID == "" {
		return errors.ValidationError("Template ID is required")
	}
	now := time.Now()
	if tmpl.CreatedAt.IsZero() {
		tmpl.CreatedAt = now
	}
	tmpl.UpdatedAt = now

	if err := s.storage.SaveTemplate(tmpl); err != nil {
		return errors.StorageError("save template", err)
	}
	s.reloadLocalTemplates()
	return nil
}

// RefreshFromRemote replaces the catalog with the backend's categories and
// templates. Without a configured backend it is a no-op error the caller can
// show as a notification.
func (s *Service) RefreshFromRemote(ctx context.Context) error {
	if s.backend == nil {
		return errors.NewAppError(errors.ErrCodeNetworkFailure, "No backend configured")
	}

	categories, err := s.backend.FetchCategories(ctx)
	if err != nil {
		return err
	}
	templates, err := s.backend.FetchTemplates(ctx)
	if err != nil {
		return err
	}

	s.catalog = catalog.New(categories, templates)
	return nil
}
