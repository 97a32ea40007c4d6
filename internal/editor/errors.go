package editor

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of an editor error.
type ErrorType int

const (
	// ErrTypeValidation indicates user input broke a domain rule. Recoverable.
	ErrTypeValidation ErrorType = iota
	// ErrTypeOutOfRange indicates a stale row address. Recovered as a no-op.
	ErrTypeOutOfRange
	// ErrTypePricing indicates the price source failed. Not user-facing.
	ErrTypePricing
	// ErrTypeUnknown indicates an unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeOutOfRange:
		return "Out Of Range"
	case ErrTypePricing:
		return "Pricing Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is an error raised by the editor core.
type Error struct {
	Type    ErrorType // Category of error
	Message string    // User-facing message for validation errors
	Row     int       // Row involved, -1 when not row specific
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error carrying a user-facing message.
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
		Row:     -1,
	}
}

// NewOutOfRangeError creates an error for a row that no longer exists.
func NewOutOfRangeError(row, rows int) *Error {
	return &Error{
		Type:    ErrTypeOutOfRange,
		Message: fmt.Sprintf("row %d out of range (%d rows)", row, rows),
		Row:     row,
	}
}

// NewPricingError wraps a price source failure.
func NewPricingError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypePricing,
		Message: message,
		Row:     -1,
		Err:     err,
	}
}

func errorType(err error) (ErrorType, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Type, true
	}
	return ErrTypeUnknown, false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// IsOutOfRangeError checks if an error is an out-of-range error
func IsOutOfRangeError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeOutOfRange
}

// IsPricingError checks if an error is a pricing fault
func IsPricingError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypePricing
}

// IsRecoverable reports whether the user can resolve err by retrying.
func IsRecoverable(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeValidation || t == ErrTypeOutOfRange)
}

// UserMessage returns the message to show the user for err.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
