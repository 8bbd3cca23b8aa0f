package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/draftkit/draftkit/internal/models"
)

func formTemplate() *models.Template {
	return &models.Template{
		ID:   "test-letter",
		Name: "Test Letter",
		Fields: []models.CustomField{
			{ID: "caseNumber", Name: "Case Number", Required: false},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFormFieldOrder(t *testing.T) {
	f := NewClientInfoForm(formTemplate())

	wantCount := len(models.StandardFields()) + 1
	if len(f.fields) != wantCount {
		t.Fatalf("form has %d fields, want %d", len(f.fields), wantCount)
	}
	if f.fields[0].ID != models.FieldFirstName {
		t.Errorf("first field = %s, want firstName", f.fields[0].ID)
	}
	if f.fields[wantCount-1].ID != "caseNumber" {
		t.Errorf("last field = %s, want caseNumber", f.fields[wantCount-1].ID)
	}
}

func TestFormTypingClearsFieldError(t *testing.T) {
	f := NewClientInfoForm(formTemplate())
	f.SetErrors(map[string]string{
		models.FieldFirstName: "required",
		models.FieldLastName:  "required",
	})

	// The first field is focused; typing into it clears only its error.
	f.Update(keyRunes("J"))

	if _, ok := f.errors[models.FieldFirstName]; ok {
		t.Error("typing must clear the focused field's error")
	}
	if f.errors[models.FieldLastName] != "required" {
		t.Error("other fields keep their errors until the next submit")
	}
}

func TestFormNavigationWraps(t *testing.T) {
	f := NewClientInfoForm(formTemplate())
	last := len(f.fields) - 1

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focused != last {
		t.Errorf("focused = %d, want %d after wrapping backwards", f.focused, last)
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focused != 0 {
		t.Errorf("focused = %d, want 0 after wrapping forwards", f.focused)
	}
}

func TestFormToClientInfo(t *testing.T) {
	f := NewClientInfoForm(formTemplate())
	f.Update(keyRunes("Jane"))

	info := f.ToClientInfo()
	if info.Get(models.FieldFirstName) != "Jane" {
		t.Errorf("firstName = %q, want Jane", info.Get(models.FieldFirstName))
	}
	// Every standard key is present even when untouched.
	if _, ok := info[models.FieldZipCode]; !ok {
		t.Error("zipCode key missing from draft")
	}
}

func TestFormLoadClientInfo(t *testing.T) {
	f := NewClientInfoForm(formTemplate())

	info := models.NewClientInfo()
	info.Set(models.FieldFirstName, "Jane")
	info.Set("caseNumber", "A-123")
	f.LoadClientInfo(info)

	got := f.ToClientInfo()
	if got.Get(models.FieldFirstName) != "Jane" {
		t.Errorf("firstName = %q", got.Get(models.FieldFirstName))
	}
	if got.Get("caseNumber") != "A-123" {
		t.Errorf("caseNumber = %q", got.Get("caseNumber"))
	}
}

func TestFormSubmitFlag(t *testing.T) {
	f := NewClientInfoForm(formTemplate())

	f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !f.IsSubmitted() {
		t.Error("ctrl+s must set the submitted flag")
	}
	f.ClearSubmitted()
	if f.IsSubmitted() {
		t.Error("ClearSubmitted must reset the flag")
	}
}

func TestFormReset(t *testing.T) {
	f := NewClientInfoForm(formTemplate())
	f.Update(keyRunes("Jane"))
	f.SetErrors(map[string]string{models.FieldLastName: "required"})
	f.Update(tea.KeyMsg{Type: tea.KeyTab})

	f.Reset()
	if f.focused != 0 {
		t.Errorf("focused = %d, want 0", f.focused)
	}
	if len(f.errors) != 0 {
		t.Errorf("errors = %v, want empty", f.errors)
	}
	if f.ToClientInfo().Get(models.FieldFirstName) != "" {
		t.Error("values must be cleared")
	}
}
