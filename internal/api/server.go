// Package api exposes the document pipeline over HTTP so a web front end
// can drive the same catalog, validation and rendering logic as the TUI.
//
// Endpoints:
//   - GET  /api/v1/categories                  - category list
//   - GET  /api/v1/templates[?category=id]     - template list
//   - GET  /api/v1/templates/{id}              - single template
//   - GET  /api/v1/templates/{id}/fields       - custom field schema
//   - POST /api/v1/render                      - validate + substitute
//   - POST /api/v1/export                      - render and write to exports/
//   - GET  /api/v1/health                      - liveness probe
//
// All responses use the {success,data,message,error,timestamp} envelope.
// Validation failures on render/export return 422 with the per-field error
// map so the form can surface inline messages.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/service"
)

// APIServer provides the HTTP API with middleware support
type APIServer struct {
	service      *service.Service
	errorHandler *errors.HTTPErrorHandler
	port         int
	server       *http.Server
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *service.Service, port int) *APIServer {
	ctx, cancel := context.WithCancel(context.Background())

	return &APIServer{
		service:      svc,
		errorHandler: errors.NewHTTPErrorHandler(true),
		port:         port,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins serving HTTP requests with middleware
func (s *APIServer) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/categories", s.withMiddleware(s.handleCategories))
	mux.HandleFunc("/api/v1/templates", s.withMiddleware(s.handleTemplates))
	mux.HandleFunc("/api/v1/templates/", s.withMiddleware(s.handleTemplatesWithID))
	mux.HandleFunc("/api/v1/render", s.withMiddleware(s.handleRender))
	mux.HandleFunc("/api/v1/export", s.withMiddleware(s.handleExport))
	mux.HandleFunc("/api/v1/health", s.withMiddleware(s.handleHealth))

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("API server starting on http://localhost:%d", s.port)

	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *APIServer) Stop(ctx context.Context) error {
	s.cancel()
	return s.server.Shutdown(ctx)
}

// withMiddleware applies middleware to HTTP handlers
func (s *APIServer) withMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	return s.loggingMiddleware(
		s.corsMiddleware(
			s.contentTypeMiddleware(
				s.errorMiddleware(handler),
			),
		),
	)
}

// loggingMiddleware logs HTTP requests
func (s *APIServer) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		duration := time.Since(start)
		log.Printf("[%s] %s %s - %v", r.Method, r.URL.Path, r.RemoteAddr, duration)
	}
}

// corsMiddleware handles CORS headers
func (s *APIServer) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// contentTypeMiddleware sets default content type
func (s *APIServer) contentTypeMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next(w, r)
	}
}

// errorMiddleware handles panics and errors
func (s *APIServer) errorMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic in handler: %v", err)
				appErr := errors.InternalError("Internal server error")
				s.errorHandler.WriteHTTPError(w, appErr)
			}
		}()
		next(w, r)
	}
}

// APIResponse represents a standardized API response
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// writeResponse writes a standardized JSON response
func (s *APIServer) writeResponse(w http.ResponseWriter, data interface{}, message string, statusCode int) {
	response := APIResponse{
		Success:   statusCode < 400,
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	}

	w.WriteHeader(statusCode)

	jsonData, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		json.NewEncoder(w).Encode(response)
		return
	}

	w.Write(jsonData)
}

// writeError writes an error response using the error handler
func (s *APIServer) writeError(w http.ResponseWriter, err error) {
	s.errorHandler.WriteHTTPError(w, err)
}

// templateResource is the wire shape of a template
type templateResource struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Description string               `json:"description,omitempty"`
	Content     string               `json:"content"`
	Fields      []models.CustomField `json:"fields,omitempty"`
}

func toTemplateResource(t *models.Template) templateResource {
	return templateResource{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Summary,
		Content:     t.Content,
		Fields:      t.Fields,
	}
}

// handleCategories handles GET /api/v1/categories
func (s *APIServer) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.NewAppError(errors.ErrCodeInvalidCommand, "Method not allowed"))
		return
	}

	categories := s.service.ListCategories()
	s.writeResponse(w, categories, fmt.Sprintf("Found %d categories", len(categories)), http.StatusOK)
}

// handleTemplates handles GET /api/v1/templates
func (s *APIServer) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.NewAppError(errors.ErrCodeInvalidCommand, "Method not allowed"))
		return
	}

	var templates []*models.Template
	if category := r.URL.Query().Get("category"); category != "" {
		templates = s.service.TemplatesByCategory(category)
	} else if query := r.URL.Query().Get("q"); query != "" {
		templates = s.service.SearchTemplates(query)
	} else {
		templates = s.service.ListTemplates()
	}

	resources := make([]templateResource, 0, len(templates))
	for _, t := range templates {
		resources = append(resources, toTemplateResource(t))
	}

	s.writeResponse(w, resources, fmt.Sprintf("Found %d templates", len(resources)), http.StatusOK)
}

// handleTemplatesWithID handles /api/v1/templates/{id} and
// /api/v1/templates/{id}/fields
func (s *APIServer) handleTemplatesWithID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, errors.NewAppError(errors.ErrCodeInvalidCommand, "Method not allowed"))
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/v1/templates/")
	if path == "" {
		s.writeError(w, errors.ValidationError("Template ID is required"))
		return
	}

	if id, ok := strings.CutSuffix(path, "/fields"); ok {
		fields, err := s.service.CustomFields(id)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if fields == nil {
			fields = []models.CustomField{}
		}
		s.writeResponse(w, fields, "", http.StatusOK)
		return
	}

	tmpl, err := s.service.Template(path)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, toTemplateResource(tmpl), "", http.StatusOK)
}

// renderRequest is the body for render and export calls
type renderRequest struct {
	TemplateID string            `json:"template_id"`
	ClientInfo map[string]string `json:"client_info"`
	Filename   string            `json:"filename,omitempty"`
}

func (s *APIServer) decodeRenderRequest(w http.ResponseWriter, r *http.Request) (*renderRequest, bool) {
	if r.Method != http.MethodPost {
		s.writeError(w, errors.NewAppError(errors.ErrCodeInvalidCommand, "Method not allowed"))
		return nil, false
	}

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.ValidationError("Invalid JSON body").WithDetails(err.Error()))
		return nil, false
	}
	if req.TemplateID == "" {
		s.writeError(w, errors.ValidationError("template_id is required"))
		return nil, false
	}
	return &req, true
}

// handleRender handles POST /api/v1/render
func (s *APIServer) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	doc, result, err := s.service.GenerateDocument(req.TemplateID, models.ClientInfo(req.ClientInfo))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !result.Valid {
		s.writeValidationFailure(w, result.Errors)
		return
	}

	s.writeResponse(w, doc, "Document generated", http.StatusOK)
}

// handleExport handles POST /api/v1/export
func (s *APIServer) handleExport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRenderRequest(w, r)
	if !ok {
		return
	}

	doc, result, err := s.service.GenerateDocument(req.TemplateID, models.ClientInfo(req.ClientInfo))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !result.Valid {
		s.writeValidationFailure(w, result.Errors)
		return
	}

	path, err := s.service.ExportDocument(doc, req.Filename)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeResponse(w, map[string]interface{}{
		"document": doc,
		"path":     path,
	}, "Document exported", http.StatusOK)
}

// writeValidationFailure returns the per-field error map with 422
func (s *APIServer) writeValidationFailure(w http.ResponseWriter, fieldErrors map[string]string) {
	response := APIResponse{
		Success:   false,
		Error:     map[string]interface{}{"fields": fieldErrors},
		Message:   "Client information is incomplete or malformed",
		Timestamp: time.Now(),
	}
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}

// handleHealth handles GET /api/v1/health
func (s *APIServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, map[string]interface{}{
		"status":    "healthy",
		"templates": len(s.service.ListTemplates()),
	}, "Service is healthy", http.StatusOK)
}
