// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the HTTP layer is expressed as an *HTTPError so
// clients always receive the same JSON shape: a machine-friendly code, a
// human-readable message, the status, and optional field-level details.
package errs

import "sort"

// FieldErrors maps a request field (by its JSON name) to the list of
// validation messages produced for it.
//
// Example:
//
//	{ "email": ["must be a valid email address"] }
type FieldErrors map[string][]string

// Add appends a message for field, allocating the slice on first use.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Fields returns the field names in sorted order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Empty reports whether no field has a message.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}
