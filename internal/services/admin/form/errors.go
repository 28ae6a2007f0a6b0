// Package form validates admin drafts and tracks per-field error messages.
package form

import (
	"slices"
	"sort"
)

// FieldErrors maps every known field of a form to its current error message
// keys. A field with an empty slice is valid; fields are never absent once
// the map is built with NewFieldErrors.
type FieldErrors map[string][]string

// NewFieldErrors returns an error map with every field present and valid.
func NewFieldErrors(fields ...string) FieldErrors {
	errs := make(FieldErrors, len(fields))
	for _, field := range fields {
		errs[field] = []string{}
	}
	return errs
}

// Add appends a message key to field, registering the field if needed.
func (e FieldErrors) Add(field, key string) {
	e[field] = append(e[field], key)
}

// Clear resets a field to valid. Unknown fields are registered as valid.
func (e FieldErrors) Clear(field string) {
	e[field] = []string{}
}

// Get returns the message keys for field.
func (e FieldErrors) Get(field string) []string {
	return e[field]
}

// Has reports whether field currently has errors.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Valid reports whether no field has errors.
func (e FieldErrors) Valid() bool {
	for _, messages := range e {
		if len(messages) > 0 {
			return false
		}
	}
	return true
}

// Fields returns the known field names, sorted.
func (e FieldErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for field := range e {
		out = append(out, field)
	}
	sort.Strings(out)
	return out
}

// Merge overwrites each field present in other.
func (e FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		e[field] = slices.Clone(messages)
		if e[field] == nil {
			e[field] = []string{}
		}
	}
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	out.Merge(e)
	return out
}
