// Package remote is the HTTP client for the firm's backend REST API. The
// backend owns authentication, messaging, tasks and reports; this client
// only consumes the template catalog resources the document pipeline needs.
//
// Every request carries a bearer token from the SessionCache. A 401 or 403
// response clears the session (the interceptor behavior of the web client:
// redirect to login) and comes back as an authentication AppError; other
// failures surface as network AppErrors the caller shows as notifications.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
)

// Client talks to the firm's backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionCache
}

// NewClient creates a backend client. The session cache is held by
// reference and shared with whoever manages login.
func NewClient(baseURL string, timeout time.Duration, session *SessionCache) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    session,
	}
}

// catalogTemplate is the wire shape of a template resource.
type catalogTemplate struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Category    string               `json:"category"`
	Description string               `json:"description,omitempty"`
	Content     string               `json:"content"`
	Fields      []models.CustomField `json:"fields,omitempty"`
}

// FetchCategories retrieves the category list from the backend.
func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/api/v1/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchTemplates retrieves the full template list from the backend.
func (c *Client) FetchTemplates(ctx context.Context) ([]*models.Template, error) {
	var wire []catalogTemplate
	if err := c.getJSON(ctx, "/api/v1/templates", &wire); err != nil {
		return nil, err
	}

	templates := make([]*models.Template, 0, len(wire))
	for _, w := range wire {
		templates = append(templates, &models.Template{
			ID:       w.ID,
			Name:     w.Name,
			Category: w.Category,
			Summary:  w.Description,
			Content:  w.Content,
			Fields:   w.Fields,
		})
	}
	return templates, nil
}

// FetchCustomFields retrieves the custom fields registered for a template.
func (c *Client) FetchCustomFields(ctx context.Context, templateID string) ([]models.CustomField, error) {
	var fields []models.CustomField
	path := "/api/v1/templates/" + url.PathEscape(templateID) + "/fields"
	if err := c.getJSON(ctx, path, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.baseURL == "" {
		return errors.NewAppError(errors.ErrCodeNetworkFailure, "No backend URL configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.NetworkError("build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NetworkError("GET "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Session is no longer valid; drop it so the next login starts clean.
		c.session.Clear()
		return errors.UnauthorizedError("Session expired, please log in again")
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundError("Resource " + path)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.NewAppError(errors.ErrCodeNetworkFailure,
			fmt.Sprintf("Backend returned %d", resp.StatusCode)).
			WithDetails(strings.TrimSpace(string(body)))
	}

	// Responses arrive either bare or wrapped in the {success,data} envelope.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NetworkError("read response", err)
	}

	var envelope struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Success != nil && envelope.Data != nil {
		body = envelope.Data
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, errors.ErrCodeNetworkFailure, "Failed to decode backend response")
	}
	return nil
}
