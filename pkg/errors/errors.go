// Package errors provides structured error types for the BrickTablePlanner application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes identify the failure category:
//   - MALFORMED_RECORD, EMPTY_TEMPLATE: template source problems
//   - EMPTY_ASSEMBLY, EMPTY_TEXT: placement operations given nothing to place
//   - UNSUPPORTED_CHARACTER, UNSUPPORTED_SPAN: layout requests outside the fixed tables
//   - UNKNOWN_PART: strict BOM classification found a part with no catalog entry
//   - INVALID_*: configuration and input validation failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnsupportedSpan, "no segment decomposition for span %d", span)
//	if errors.Is(err, errors.ErrCodeUnsupportedSpan) {
//	    // Handle layout configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "open template %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Template source errors
	ErrCodeMalformedRecord Code = "MALFORMED_RECORD"
	ErrCodeEmptyTemplate   Code = "EMPTY_TEMPLATE"

	// Placement errors
	ErrCodeEmptyAssembly Code = "EMPTY_ASSEMBLY"
	ErrCodeEmptyText     Code = "EMPTY_TEXT"

	// Layout configuration errors
	ErrCodeUnsupportedCharacter Code = "UNSUPPORTED_CHARACTER"
	ErrCodeUnsupportedSpan      Code = "UNSUPPORTED_SPAN"

	// BOM classification errors
	ErrCodeUnknownPart Code = "UNKNOWN_PART"

	// Input validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
