package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftkit/draftkit/internal/models"
)

// ClientInfoForm collects the eight standard client fields plus the active
// template's custom fields. Errors are set from a failed submit and cleared
// optimistically: typing in a field removes its error immediately, and the
// field is not re-validated until the next submit attempt.
type ClientInfoForm struct {
	template  *models.Template
	fields    []models.CustomField // standard fields followed by custom fields
	inputs    []textinput.Model
	errors    map[string]string
	focused   int
	submitted bool
}

// NewClientInfoForm creates a form for the given template's field schema.
func NewClientInfoForm(template *models.Template) *ClientInfoForm {
	fields := make([]models.CustomField, 0, len(models.StandardFields())+len(template.Fields))
	fields = append(fields, models.StandardFields()...)
	fields = append(fields, template.Fields...)

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 200
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()

	return &ClientInfoForm{
		template: template,
		fields:   fields,
		inputs:   inputs,
		errors:   make(map[string]string),
	}
}

// Update handles form updates
func (f *ClientInfoForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "tab", "down", "enter":
		f.nextField()
		return nil
	case "shift+tab", "up":
		f.prevField()
		return nil
	case "ctrl+s":
		f.submitted = true
		return nil
	}

	var cmd tea.Cmd
	before := f.inputs[f.focused].Value()
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)

	// A keystroke that changed the draft clears any stale error for this
	// field right away.
	if f.inputs[f.focused].Value() != before {
		delete(f.errors, f.fields[f.focused].ID)
	}

	return cmd
}

// nextField moves focus to the next form field
func (f *ClientInfoForm) nextField() {
	f.inputs[f.focused].Blur()
	f.focused++
	if f.focused >= len(f.inputs) {
		f.focused = 0
	}
	f.inputs[f.focused].Focus()
}

// prevField moves focus to the previous form field
func (f *ClientInfoForm) prevField() {
	f.inputs[f.focused].Blur()
	f.focused--
	if f.focused < 0 {
		f.focused = len(f.inputs) - 1
	}
	f.inputs[f.focused].Focus()
}

// ToClientInfo converts the current draft to a ClientInfo record
func (f *ClientInfoForm) ToClientInfo() models.ClientInfo {
	info := models.NewClientInfo()
	for i, field := range f.fields {
		info.Set(field.ID, f.inputs[i].Value())
	}
	return info
}

// LoadClientInfo seeds the draft, used when navigating back from the preview
func (f *ClientInfoForm) LoadClientInfo(info models.ClientInfo) {
	if info == nil {
		return
	}
	for i, field := range f.fields {
		f.inputs[i].SetValue(info.Get(field.ID))
	}
}

// SetErrors replaces the per-field error map after a failed submit
func (f *ClientInfoForm) SetErrors(errs map[string]string) {
	f.errors = make(map[string]string, len(errs))
	for k, v := range errs {
		f.errors[k] = v
	}
}

// IsSubmitted returns whether a submit was requested
func (f *ClientInfoForm) IsSubmitted() bool {
	return f.submitted
}

// ClearSubmitted resets the submit flag after the orchestrator consumed it
func (f *ClientInfoForm) ClearSubmitted() {
	f.submitted = false
}

// Reset clears the draft and errors
func (f *ClientInfoForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.errors = make(map[string]string)
	f.focused = 0
	f.submitted = false
	f.inputs[0].Focus()
}

// View renders the form
func (f *ClientInfoForm) View() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Client Information"))
	b.WriteString("\n\n")

	standardCount := len(models.StandardFields())
	for i, field := range f.fields {
		if i == standardCount {
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(fmt.Sprintf("%s Fields", f.template.Name)))
			b.WriteString("\n\n")
		}

		label := field.Name
		if field.Required {
			label += " *"
		}
		if i == f.focused {
			b.WriteString(focusedStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if msg := f.errors[field.ID]; msg != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	return b.String()
}
