package models

import "testing"

func TestNewClientInfoHasStandardKeys(t *testing.T) {
	info := NewClientInfo()
	if len(info) != len(StandardFields()) {
		t.Errorf("len = %d, want %d", len(info), len(StandardFields()))
	}
	for _, f := range StandardFields() {
		if _, ok := info[f.ID]; !ok {
			t.Errorf("missing standard key %s", f.ID)
		}
	}
}

func TestClientInfoGetSet(t *testing.T) {
	info := NewClientInfo()
	info.Set(FieldFirstName, "Jane")
	if got := info.Get(FieldFirstName); got != "Jane" {
		t.Errorf("Get() = %q", got)
	}
	if got := info.Get("unknown"); got != "" {
		t.Errorf("Get(unknown) = %q, want empty", got)
	}

	var nilInfo ClientInfo
	if got := nilInfo.Get(FieldEmail); got != "" {
		t.Errorf("nil Get() = %q, want empty", got)
	}
}

func TestClientInfoIsBlank(t *testing.T) {
	info := NewClientInfo()
	if !info.IsBlank(FieldCity) {
		t.Error("empty field must be blank")
	}
	info.Set(FieldCity, "   ")
	if !info.IsBlank(FieldCity) {
		t.Error("whitespace-only field must be blank")
	}
	info.Set(FieldCity, "Springfield")
	if info.IsBlank(FieldCity) {
		t.Error("filled field must not be blank")
	}
}

func TestClientInfoClone(t *testing.T) {
	info := NewClientInfo()
	info.Set(FieldFirstName, "Jane")

	clone := info.Clone()
	clone.Set(FieldFirstName, "John")

	if info.Get(FieldFirstName) != "Jane" {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestIsStandardField(t *testing.T) {
	if !IsStandardField(FieldEmail) {
		t.Error("email is a standard field")
	}
	if IsStandardField("taxYear") {
		t.Error("taxYear is not a standard field")
	}
}
