package wizard

import (
	"testing"

	"github.com/draftkit/draftkit/internal/models"
)

func testTemplate() *models.Template {
	return &models.Template{
		ID:      "test-letter",
		Name:    "Test Letter",
		Content: "Dear {{firstName}} {{lastName}},",
	}
}

func filledInfo() models.ClientInfo {
	info := models.NewClientInfo()
	info.Set(models.FieldFirstName, "Jane")
	info.Set(models.FieldLastName, "Doe")
	info.Set(models.FieldEmail, "jane@example.com")
	info.Set(models.FieldPhone, "555-1234")
	info.Set(models.FieldAddress, "123 Main St")
	info.Set(models.FieldCity, "Springfield")
	info.Set(models.FieldState, "IL")
	info.Set(models.FieldZipCode, "62704")
	return info
}

func TestNewWizardStartsAtSelect(t *testing.T) {
	w := New()
	if w.Step() != StepSelect {
		t.Errorf("Step() = %v, want %v", w.Step(), StepSelect)
	}
	if w.Template() != nil {
		t.Error("new wizard must have no template")
	}
	if w.ClientInfo() != nil {
		t.Error("new wizard must have no client info")
	}
}

func TestSelectAdvancesToForm(t *testing.T) {
	w := New()
	tmpl := testTemplate()

	if err := w.Select(tmpl); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if w.Step() != StepForm {
		t.Errorf("Step() = %v, want %v", w.Step(), StepForm)
	}
	if w.Template() != tmpl {
		t.Error("Template() must return the selected template")
	}
}

func TestSelectNilTemplate(t *testing.T) {
	w := New()
	if err := w.Select(nil); err == nil {
		t.Error("Select(nil) must fail")
	}
	if w.Step() != StepSelect {
		t.Error("failed Select must leave the wizard at the select step")
	}
}

func TestSelectOutOfOrder(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if err := w.Select(testTemplate()); err == nil {
		t.Error("second Select must fail while at the form step")
	}
}

func TestSubmitInvalidStaysAtForm(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	result, err := w.Submit(models.NewClientInfo())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for empty draft")
	}
	if w.Step() != StepForm {
		t.Errorf("Step() = %v, want %v after failed submit", w.Step(), StepForm)
	}
	if w.ClientInfo() != nil {
		t.Error("failed submit must not store client info")
	}
}

func TestSubmitValidAdvancesToPreview(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	info := filledInfo()
	result, err := w.Submit(info)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid result, got %v", result.Errors)
	}
	if w.Step() != StepPreview {
		t.Errorf("Step() = %v, want %v", w.Step(), StepPreview)
	}
	if w.ClientInfo().Get(models.FieldLastName) != "Doe" {
		t.Error("submitted info must be stored")
	}
}

func TestSubmitOutOfOrder(t *testing.T) {
	w := New()
	if _, err := w.Submit(filledInfo()); err == nil {
		t.Error("Submit at the select step must fail")
	}
}

func TestSubmitChecksTemplateFields(t *testing.T) {
	tmpl := testTemplate()
	tmpl.Fields = []models.CustomField{
		{ID: "taxYear", Name: "Tax Year", Required: true},
	}

	w := New()
	if err := w.Select(tmpl); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	result, err := w.Submit(filledInfo())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result while taxYear is empty")
	}
	if _, ok := result.Errors["taxYear"]; !ok {
		t.Errorf("expected taxYear error, got %v", result.Errors)
	}
}

func TestBackFromPreviewKeepsInfo(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if _, err := w.Submit(filledInfo()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	w.Back()
	if w.Step() != StepForm {
		t.Errorf("Step() = %v, want %v", w.Step(), StepForm)
	}
	if w.Template() == nil {
		t.Error("Back from preview must keep the template")
	}
	if w.ClientInfo() == nil {
		t.Error("Back from preview must keep the submitted info")
	}
}

func TestBackFromFormClearsTemplate(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	w.Back()
	if w.Step() != StepSelect {
		t.Errorf("Step() = %v, want %v", w.Step(), StepSelect)
	}
	if w.Template() != nil {
		t.Error("Back from form must clear the template")
	}
}

func TestResetFromAnyStep(t *testing.T) {
	w := New()
	if err := w.Select(testTemplate()); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if _, err := w.Submit(filledInfo()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	w.Reset()
	if w.Step() != StepSelect {
		t.Errorf("Step() = %v, want %v", w.Step(), StepSelect)
	}
	if w.Template() != nil {
		t.Error("Reset must clear the template")
	}
	if w.ClientInfo() != nil {
		t.Error("Reset must clear the client info")
	}

	// The wizard is restartable: a fresh run works after reset.
	if err := w.Select(testTemplate()); err != nil {
		t.Errorf("Select after Reset error = %v", err)
	}
	if _, err := w.Submit(filledInfo()); err != nil {
		t.Errorf("Submit after Reset error = %v", err)
	}
	if w.Step() != StepPreview {
		t.Errorf("Step() = %v, want %v", w.Step(), StepPreview)
	}
}
