package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeMalformedRecord = "MALFORMED_RECORD"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// AppError represents an application error with a machine-readable code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "INVALID_INPUT")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewInvalidInputError creates a new INVALID_INPUT error
func NewInvalidInputError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
	}
}

// NewMalformedRecordError creates a new MALFORMED_RECORD error
func NewMalformedRecordError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedRecord,
		Message: fmt.Sprintf("malformed record: %s", reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// hasCode reports whether err is an AppError carrying the given code.
func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound reports whether err is a NOT_FOUND error
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsInvalidInput reports whether err is an INVALID_INPUT error
func IsInvalidInput(err error) bool { return hasCode(err, ErrCodeInvalidInput) }

// IsMalformedRecord reports whether err is a MALFORMED_RECORD error
func IsMalformedRecord(err error) bool { return hasCode(err, ErrCodeMalformedRecord) }
