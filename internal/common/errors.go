package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes for the mapping engine taxonomy. These are the stable strings
// recorded in error_message prefixes and matched on by callers.
const (
	CodeConfiguration  = "CONFIGURATION_ERROR"  // missing/invalid mapping configuration
	CodeJoinKeyMissing = "JOIN_KEY_MISSING"     // declared key absent and unrecoverable
	CodeReferenceLoad  = "REFERENCE_LOAD_ERROR" // reference dataset unreadable/unparsable
	CodeExtraction     = "EXTRACTION_ERROR"     // upstream document-understanding failure
	CodeOrderLocked    = "ORDER_LOCKED"         // administrative freeze
)

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func ConfigurationError(format string, args ...any) *AppError {
	return &AppError{Code: CodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

func JoinKeyMissingError(format string, args ...any) *AppError {
	return &AppError{Code: CodeJoinKeyMissing, Message: fmt.Sprintf(format, args...)}
}

func ReferenceLoadError(message string, cause error) *AppError {
	return &AppError{Code: CodeReferenceLoad, Message: message, Cause: cause}
}

func ExtractionError(message string, cause error) *AppError {
	return &AppError{Code: CodeExtraction, Message: message, Cause: cause}
}

func OrderLockedError(orderID string) *AppError {
	return &AppError{Code: CodeOrderLocked, Message: fmt.Sprintf("order %s is locked", orderID)}
}

// HasCode reports whether err (or anything it wraps) is an AppError with the
// given code.
func HasCode(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func IsConfigurationError(err error) bool { return HasCode(err, CodeConfiguration) }
func IsJoinKeyMissing(err error) bool     { return HasCode(err, CodeJoinKeyMissing) }
func IsReferenceLoadError(err error) bool { return HasCode(err, CodeReferenceLoad) }
func IsOrderLocked(err error) bool        { return HasCode(err, CodeOrderLocked) }

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
