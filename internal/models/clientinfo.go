package models

import "strings"

// Standard client field keys. Every template form collects these eight fields
// before any template-specific fields.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldState     = "state"
	FieldZipCode   = "zipCode"
)

// ClientInfo is the flat record of standard and template-specific field
// values collected from the user. Keys match placeholder tokens in template
// content.
type ClientInfo map[string]string

// NewClientInfo returns a draft with every standard field present and empty.
func NewClientInfo() ClientInfo {
	info := make(ClientInfo, len(standardFields))
	for _, f := range standardFields {
		info[f.ID] = ""
	}
	return info
}

// Get returns the value for a field key, or empty string if unset.
func (c ClientInfo) Get(key string) string {
	if c == nil {
		return ""
	}
	return c[key]
}

// Set stores a field value, allocating the map if needed.
func (c ClientInfo) Set(key, value string) {
	c[key] = value
}

// Clone returns an independent copy of the record.
func (c ClientInfo) Clone() ClientInfo {
	out := make(ClientInfo, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// IsBlank reports whether the value for key is empty or whitespace-only.
func (c ClientInfo) IsBlank(key string) bool {
	return strings.TrimSpace(c.Get(key)) == ""
}

var standardFields = []CustomField{
	{ID: FieldFirstName, Name: "First Name", Placeholder: "Jane", Required: true},
	{ID: FieldLastName, Name: "Last Name", Placeholder: "Doe", Required: true},
	{ID: FieldEmail, Name: "Email", Placeholder: "jane@example.com", Required: true},
	{ID: FieldPhone, Name: "Phone", Placeholder: "(555) 123-4567", Required: true},
	{ID: FieldAddress, Name: "Address", Placeholder: "123 Main St", Required: true},
	{ID: FieldCity, Name: "City", Placeholder: "Springfield", Required: true},
	{ID: FieldState, Name: "State", Placeholder: "IL", Required: true},
	{ID: FieldZipCode, Name: "Zip Code", Placeholder: "62704", Required: true},
}

// StandardFields returns the eight standard client fields in display order.
// The returned slice is shared; callers must not mutate it.
func StandardFields() []CustomField {
	return standardFields
}

// IsStandardField reports whether key is one of the standard client fields.
func IsStandardField(key string) bool {
	for _, f := range standardFields {
		if f.ID == key {
			return true
		}
	}
	return false
}
