// Package error defines domain-specific errors for the Kakeibo application.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when no income profile exists for the user.
	ErrIncomeNotFound = errors.New("income profile not found")

	// ErrInvalidGrossAmount is returned when the gross amount is zero or negative.
	ErrInvalidGrossAmount = errors.New("invalid gross amount")

	// ErrInvalidIncomePeriod is returned when the income period is not monthly or yearly.
	ErrInvalidIncomePeriod = errors.New("invalid income period")

	// ErrInvalidRate is returned when a percentage rate is outside [0, 100].
	ErrInvalidRate = errors.New("rate must be between 0 and 100")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGrossAmount  IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomePeriod IncomeErrorCode = "INC-010002"
	ErrCodeInvalidTaxRate      IncomeErrorCode = "INC-010003"
	ErrCodeInvalidSavingsRate  IncomeErrorCode = "INC-010004"
	ErrCodeMissingIncomeFields IncomeErrorCode = "INC-010005"

	// Not found errors (02XXXX)
	ErrCodeIncomeNotFound IncomeErrorCode = "INC-020001"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
