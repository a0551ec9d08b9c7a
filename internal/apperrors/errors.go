package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidDateFormat indicates that a date string is not a plain YYYY-MM-DD value.
var ErrInvalidDateFormat = errors.New("invalid date format")

// Validation error codes. Stable identifiers for callers that need to react
// programmatically; Message carries the user-facing text.
const (
	CodeRequiredField         = "required_field"
	CodeInvalidAmount         = "invalid_amount"
	CodeMissingSettlementDate = "missing_settlement_date"
)

// ValidationError is a coded validation failure for a specific field.
// It unwraps to ErrValidation so errors.Is checks keep working.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Field)
	}
	return e.Code
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a coded validation error with a user-facing message.
func NewValidationError(code, field, message string) error {
	return &ValidationError{Code: code, Field: field, Message: message}
}
