package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError holds the messages recorded against each field
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error lists the fields alphabetically so messages are stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name + ": " + strings.Join(v.Fields[name], ", "))
	}
	return b.String()
}

// ValidationBuilder records field problems for a config or record.
// Build turns them into one InvalidArgument error.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder starts an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field records a message against a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf is Field with formatting
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing dependency or value
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Range records a message when value falls outside [lo, hi]
func (vb *ValidationBuilder) Range(field string, value, lo, hi int) *ValidationBuilder {
	if value < lo || value > hi {
		vb.Fieldf(field, "must be between %d and %d, got %d", lo, hi, value)
	}
	return vb
}

// Build returns nil when nothing was recorded
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	ve := &ValidationError{Fields: vb.fields}
	return InvalidArgument(ve.Error()).WithMeta("validation_errors", ve.Fields)
}
