package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewStorage(t.TempDir())
	require.NoError(t, err)

	svc, err := NewService(store, nil)
	require.NoError(t, err)
	return svc
}

func fullInfo() models.ClientInfo {
	info := models.NewClientInfo()
	info.Set(models.FieldFirstName, "Jane")
	info.Set(models.FieldLastName, "Doe")
	info.Set(models.FieldEmail, "jane@example.com")
	info.Set(models.FieldPhone, "(555) 123-4567")
	info.Set(models.FieldAddress, "123 Main St")
	info.Set(models.FieldCity, "Springfield")
	info.Set(models.FieldState, "IL")
	info.Set(models.FieldZipCode, "62704")
	return info
}

func TestListCatalog(t *testing.T) {
	svc := newTestService(t)

	assert.Len(t, svc.ListCategories(), 5)
	assert.NotEmpty(t, svc.ListTemplates())
	assert.NotEmpty(t, svc.TemplatesByCategory("tax"))
	assert.Empty(t, svc.TemplatesByCategory("unknown"))
}

func TestTemplateNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Template("does-not-exist")
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestCustomFields(t *testing.T) {
	svc := newTestService(t)

	fields, err := svc.CustomFields("tax-engagement-letter")
	require.NoError(t, err)
	assert.NotEmpty(t, fields)

	_, err = svc.CustomFields("does-not-exist")
	assert.Error(t, err)
}

func TestGenerateDocumentInvalidInfo(t *testing.T) {
	svc := newTestService(t)

	doc, result, err := svc.GenerateDocument("tax-engagement-letter", models.NewClientInfo())
	require.NoError(t, err)
	assert.Nil(t, doc)
	require.NotNil(t, result)
	assert.False(t, result.Valid)
	assert.Equal(t, "required", result.Errors[models.FieldFirstName])
	assert.Equal(t, "required", result.Errors["taxYear"])
}

func TestGenerateDocument(t *testing.T) {
	svc := newTestService(t)

	info := fullInfo()
	info.Set("taxYear", "2025")
	info.Set("filingStatus", "Single")
	info.Set("preparerName", "Maria Alvarez, EA")

	doc, result, err := svc.GenerateDocument("tax-engagement-letter", info)
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "tax-engagement-letter", doc.TemplateID)
	assert.Equal(t, "Tax_Engagement_Letter_Doe.txt", doc.Filename)
	assert.Contains(t, doc.Content, "Dear Jane Doe,")
	assert.Contains(t, doc.Content, "your 2025 individual income")
	assert.Contains(t, doc.Content, "Maria Alvarez, EA")
	assert.NotContains(t, doc.Content, "{{firstName}}")
	assert.False(t, doc.GeneratedAt.IsZero())
}

func TestSearchTemplates(t *testing.T) {
	svc := newTestService(t)

	results := svc.SearchTemplates("engagement")
	require.NotEmpty(t, results)
	assert.Equal(t, "tax-engagement-letter", results[0].ID)

	all := svc.SearchTemplates("  ")
	assert.Len(t, all, len(svc.ListTemplates()))

	assert.Empty(t, svc.SearchTemplates("zzzzqqqq"))
}

func TestExportDocument(t *testing.T) {
	svc := newTestService(t)

	info := fullInfo()
	info.Set("taxYear", "2025")
	info.Set("filingStatus", "Single")
	info.Set("preparerName", "Maria Alvarez, EA")

	doc, _, err := svc.GenerateDocument("tax-engagement-letter", info)
	require.NoError(t, err)

	path, err := svc.ExportDocument(doc, "")
	require.NoError(t, err)
	assert.Equal(t, "Tax_Engagement_Letter_Doe.txt", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, string(data))
}

func TestExportDocumentFilenameOverride(t *testing.T) {
	svc := newTestService(t)

	info := fullInfo()
	info.Set("taxYear", "2025")
	info.Set("filingStatus", "Single")
	info.Set("preparerName", "Maria Alvarez, EA")

	doc, _, err := svc.GenerateDocument("tax-engagement-letter", info)
	require.NoError(t, err)

	path, err := svc.ExportDocument(doc, "doe engagement")
	require.NoError(t, err)
	assert.Equal(t, "doe engagement.txt", filepath.Base(path))
	assert.Equal(t, "doe engagement.txt", doc.Filename)
}

func TestSaveTemplateMergesIntoCatalog(t *testing.T) {
	svc := newTestService(t)
	before := len(svc.ListTemplates())

	err := svc.SaveTemplate(&models.Template{
		ID:       "my-letter",
		Name:     "My Letter",
		Category: "tax",
		Content:  "Dear {{firstName}},",
	})
	require.NoError(t, err)

	assert.Len(t, svc.ListTemplates(), before+1)

	tmpl, err := svc.Template("my-letter")
	require.NoError(t, err)
	assert.Equal(t, "My Letter", tmpl.Name)
	assert.False(t, tmpl.CreatedAt.IsZero())
}

func TestSaveTemplateRequiresID(t *testing.T) {
	svc := newTestService(t)
	err := svc.SaveTemplate(&models.Template{Name: "No ID"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Template ID"))
}

func TestRefreshFromRemoteNoBackend(t *testing.T) {
	svc := newTestService(t)

	err := svc.RefreshFromRemote(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNetworkFailure, errors.GetAppError(err).Code)
}
