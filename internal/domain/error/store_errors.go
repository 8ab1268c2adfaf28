// Package error defines domain-specific errors for the Kakeibo application.
package error

import "fmt"

// StoreError wraps a failure of the external record store. Callers should
// retry with backoff or surface a transient failure notice; it is never
// silently swallowed.
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a store failure for the named operation.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
