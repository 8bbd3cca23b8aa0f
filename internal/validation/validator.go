// Package validation checks client info drafts before document generation.
//
// Validation runs synchronously on submit and never panics or throws: every
// failure is reported as an entry in Result.Errors keyed by field ID. The
// rules, in order:
//
//  1. Each of the eight standard fields must be non-empty (whitespace-only
//     counts as empty) - error message "required".
//  2. A non-empty email must match a basic local@domain.tld shape - error
//     message "invalid email format". An empty email only trips rule 1.
//  3. Each custom field marked required must be non-empty - "required".
//
// Rule 2 never fires for an empty email, so a blank email yields exactly one
// error with the "required" message.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
)

// Error messages surfaced next to form fields.
const (
	MsgRequired     = "required"
	MsgInvalidEmail = "invalid email format"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Result holds the outcome of validating a client info draft
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ValidateClientInfo validates a draft against the standard fields plus the
// given template-specific custom fields. Submission must be blocked while
// Valid is false; nothing is thrown.
func ValidateClientInfo(info models.ClientInfo, fields []models.CustomField) *Result {
	result := &Result{
		Valid:  true,
		Errors: make(map[string]string),
	}

	for _, f := range models.StandardFields() {
		if info.IsBlank(f.ID) {
			result.addError(f.ID, MsgRequired)
		}
	}

	if email := strings.TrimSpace(info.Get(models.FieldEmail)); email != "" {
		if !emailPattern.MatchString(email) {
			result.addError(models.FieldEmail, MsgInvalidEmail)
		}
	}

	for _, f := range fields {
		if f.Required && info.IsBlank(f.ID) {
			result.addError(f.ID, MsgRequired)
		}
	}

	return result
}

func (r *Result) addError(field, message string) {
	r.Valid = false
	r.Errors[field] = message
}

// FieldError returns the error message for a field, or empty string.
func (r *Result) FieldError(field string) string {
	if r == nil {
		return ""
	}
	return r.Errors[field]
}

// ToAppError converts a failed result to a standardized application error.
// Returns nil for a valid result.
func (r *Result) ToAppError() *errors.AppError {
	if r.Valid {
		return nil
	}

	fields := make([]string, 0, len(r.Errors))
	for field := range r.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, r.Errors[field]))
	}

	appErr := errors.ValidationError("Client information is incomplete or malformed").
		WithDetails(strings.Join(parts, "; "))
	for _, field := range fields {
		appErr.WithContext(field, r.Errors[field])
	}
	return appErr
}
