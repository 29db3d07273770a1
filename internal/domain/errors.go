package domain

import "errors"

// ErrNotFound is returned by repositories when a record does not exist.
// Callers decide how to surface it (the HTTP adapter maps it to 404).
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected input (missing or out-of-range field).
// The HTTP adapter maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
