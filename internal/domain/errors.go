package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("email already exists")
)

// FieldError describes one failed invariant check on a named field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every failed check for a value in one error,
// so callers can report all problems at once instead of only the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
