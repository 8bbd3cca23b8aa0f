package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/internal/service"
	"github.com/draftkit/draftkit/internal/storage"
)

func newTestServer(t *testing.T) *APIServer {
	t.Helper()
	store, err := storage.NewStorage(t.TempDir())
	require.NoError(t, err)
	svc, err := service.NewService(store, nil)
	require.NoError(t, err)
	return NewAPIServer(svc, 0)
}

func doRequest(s *APIServer, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, target, reqBody)
	w := httptest.NewRecorder()
	s.withMiddleware(handler)(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func validClientInfo() map[string]string {
	return map[string]string{
		"firstName":    "Jane",
		"lastName":     "Doe",
		"email":        "jane@example.com",
		"phone":        "(555) 123-4567",
		"address":      "123 Main St",
		"city":         "Springfield",
		"state":        "IL",
		"zipCode":      "62704",
		"taxYear":      "2025",
		"filingStatus": "Single",
		"preparerName": "Maria Alvarez, EA",
	}
}

func TestHandleCategories(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleCategories, http.MethodGet, "/api/v1/categories", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["data"], 5)
}

func TestHandleTemplatesFilterByCategory(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleTemplates, http.MethodGet, "/api/v1/templates?category=tax", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].([]interface{})
	require.NotEmpty(t, data)
	for _, item := range data {
		tmpl := item.(map[string]interface{})
		assert.Equal(t, "tax", tmpl["category"])
	}
}

func TestHandleTemplatesSearch(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleTemplates, http.MethodGet, "/api/v1/templates?q=engagement", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.NotEmpty(t, envelope["data"])
}

func TestHandleTemplateByID(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleTemplatesWithID, http.MethodGet, "/api/v1/templates/tax-engagement-letter", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	tmpl := envelope["data"].(map[string]interface{})
	assert.Equal(t, "tax-engagement-letter", tmpl["id"])
	assert.NotEmpty(t, tmpl["content"])
}

func TestHandleTemplateNotFound(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleTemplatesWithID, http.MethodGet, "/api/v1/templates/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleTemplateFields(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleTemplatesWithID, http.MethodGet, "/api/v1/templates/tax-engagement-letter/fields", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	fields := envelope["data"].([]interface{})
	require.NotEmpty(t, fields)
	first := fields[0].(map[string]interface{})
	assert.Equal(t, "taxYear", first["id"])
}

func TestHandleRender(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleRender, http.MethodPost, "/api/v1/render", map[string]interface{}{
		"template_id": "tax-engagement-letter",
		"client_info": validClientInfo(),
	})

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	doc := envelope["data"].(map[string]interface{})
	assert.Contains(t, doc["content"], "Dear Jane Doe,")
	assert.Equal(t, "Tax_Engagement_Letter_Doe.txt", doc["filename"])
}

func TestHandleRenderValidationFailure(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleRender, http.MethodPost, "/api/v1/render", map[string]interface{}{
		"template_id": "tax-engagement-letter",
		"client_info": map[string]string{"firstName": "Jane"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])

	errBody := envelope["error"].(map[string]interface{})
	fields := errBody["fields"].(map[string]interface{})
	assert.Equal(t, "required", fields["lastName"])
	assert.Equal(t, "required", fields["taxYear"])
}

func TestHandleRenderMissingTemplateID(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleRender, http.MethodPost, "/api/v1/render", map[string]interface{}{
		"client_info": validClientInfo(),
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleRenderMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleRender, http.MethodGet, "/api/v1/render", nil)
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestHandleExport(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleExport, http.MethodPost, "/api/v1/export", map[string]interface{}{
		"template_id": "tax-engagement-letter",
		"client_info": validClientInfo(),
		"filename":    "override-name",
	})

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Contains(t, data["path"], "override-name.txt")
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleHealth, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, s.handleCategories, http.MethodOptions, "/api/v1/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
