// Package error defines domain-specific errors for the Kakeibo application.
package error

import "fmt"

// ValidationError reports a bad input value attributed to a specific field,
// so callers can re-prompt for exactly the offending input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a field-attributed validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
