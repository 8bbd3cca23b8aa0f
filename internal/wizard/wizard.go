// Package wizard owns the three-step document generation state machine:
// template selection, client info form, editable preview. It is independent
// of the TUI so the transition rules can be tested directly.
package wizard

import (
	"github.com/draftkit/draftkit/internal/errors"
	"github.com/draftkit/draftkit/internal/models"
	"github.com/draftkit/draftkit/internal/validation"
)

// Step identifies a wizard stage
type Step string

const (
	StepSelect  Step = "select"
	StepForm    Step = "form"
	StepPreview Step = "preview"
)

// Wizard holds the ephemeral state of one document generation run.
// Invariants: StepForm implies a selected template; StepPreview implies both
// a selected template and submitted client info. Transitions that would
// violate them return an error and leave the state unchanged.
type Wizard struct {
	step     Step
	template *models.Template
	info     models.ClientInfo
}

// New creates a wizard at the selection step with no state.
func New() *Wizard {
	return &Wizard{step: StepSelect}
}

// Step returns the current stage.
func (w *Wizard) Step() Step {
	return w.step
}

// Template returns the selected template, nil before selection.
func (w *Wizard) Template() *models.Template {
	return w.template
}

// ClientInfo returns the submitted client info, nil before submission.
func (w *Wizard) ClientInfo() models.ClientInfo {
	return w.info
}

// Select confirms a template choice and advances to the form step. The
// template is held by reference; callers must not mutate it afterward.
func (w *Wizard) Select(t *models.Template) error {
	if w.step != StepSelect {
		return errors.InvalidCommandError("select", "a template is already selected")
	}
	if t == nil {
		return errors.ValidationError("No template selected")
	}
	w.template = t
	w.step = StepForm
	return nil
}

// Submit validates the draft and, if valid, stores it and advances to the
// preview step. The returned result carries per-field errors either way; the
// error return is reserved for out-of-order calls.
func (w *Wizard) Submit(info models.ClientInfo) (*validation.Result, error) {
	if w.step != StepForm {
		return nil, errors.InvalidCommandError("submit", "not at the form step")
	}

	result := validation.ValidateClientInfo(info, w.template.Fields)
	if !result.Valid {
		return result, nil
	}

	w.info = info
	w.step = StepPreview
	return result, nil
}

// Back moves one step towards selection. Going back from the form discards
// the selected template; going back from the preview keeps the submitted
// info so the form can be re-edited.
func (w *Wizard) Back() {
	switch w.step {
	case StepPreview:
		w.step = StepForm
	case StepForm:
		w.template = nil
		w.step = StepSelect
	}
}

// Reset discards all state and returns to the selection step. Available from
// any step; the wizard is restartable indefinitely.
func (w *Wizard) Reset() {
	w.step = StepSelect
	w.template = nil
	w.info = nil
}
