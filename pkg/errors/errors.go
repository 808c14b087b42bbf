// Package errors provides structured error types for groundgrid.
//
// This package defines error codes and types that enable:
//   - Consistent handling of parse, validation and computation failures
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages at the top level of the CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - PARSE_*: Non-numeric or malformed input
//   - INVALID_*: A semantic constraint was violated (validation errors)
//   - COMPUTATION_*: A derived quantity is unusable despite valid inputs
//   - IO_* / OPEN_*: File output and viewer launch failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOverhang, "overhang cannot be negative")
//	if errors.IsValidation(err) {
//	    // Report which constraint failed
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "failed to save image %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Parse errors
	ErrCodeParse Code = "PARSE_ERROR"

	// Validation errors
	ErrCodeInvalidWireCount  Code = "INVALID_WIRE_COUNT"
	ErrCodeInvalidWireLength Code = "INVALID_WIRE_LENGTH"
	ErrCodeInvalidOverhang   Code = "INVALID_OVERHANG"
	ErrCodeInvalidUnit       Code = "INVALID_UNIT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidVizType    Code = "INVALID_VIZ_TYPE"
	ErrCodeInvalidSize       Code = "INVALID_SIZE"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"

	// Computation errors
	ErrCodeComputation Code = "COMPUTATION_ERROR"

	// Output errors
	ErrCodeIO         Code = "IO_ERROR"
	ErrCodeOpenFailed Code = "OPEN_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsParse reports whether err is a parse error (non-numeric input).
func IsParse(err error) bool {
	return GetCode(err) == ErrCodeParse
}

// IsValidation reports whether err carries one of the INVALID_* codes.
func IsValidation(err error) bool {
	return strings.HasPrefix(string(GetCode(err)), "INVALID_")
}

// IsComputation reports whether err is a computation error.
func IsComputation(err error) bool {
	return GetCode(err) == ErrCodeComputation
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause when there is one.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
