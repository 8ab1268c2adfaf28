// Package error defines domain-specific errors for the Kakeibo application.
package error

import "errors"

// Savings ledger domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found in the system.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInsufficientFunds is returned when a transfer exceeds the available
	// pool or goal balance. The ledger is left untouched.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidTransferAmount is returned when a transfer amount is zero or negative.
	ErrInvalidTransferAmount = errors.New("transfer amount must be greater than zero")

	// ErrInvalidTargetAmount is returned when a goal target is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrMissingGoalName is returned when a goal is created without a name.
	ErrMissingGoalName = errors.New("goal name is required")
)

// SavingsErrorCode defines error codes for savings ledger errors.
// Format: SAV-XXYYYY where XX is category and YYYY is specific error.
type SavingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransferAmount SavingsErrorCode = "SAV-010001"
	ErrCodeInvalidTargetAmount   SavingsErrorCode = "SAV-010002"
	ErrCodeMissingGoalName       SavingsErrorCode = "SAV-010003"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound SavingsErrorCode = "SAV-020001"

	// Business rule errors (03XXXX)
	ErrCodeInsufficientFunds SavingsErrorCode = "SAV-030001"
)

// SavingsError represents a savings ledger error with code and message.
type SavingsError struct {
	Code    SavingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SavingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SavingsError) Unwrap() error {
	return e.Err
}

// NewSavingsError creates a new SavingsError with the given code and message.
func NewSavingsError(code SavingsErrorCode, message string, err error) *SavingsError {
	return &SavingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
