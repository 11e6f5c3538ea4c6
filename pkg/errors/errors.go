// Package errors provides structured error types for the screenlayout engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine packages and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - UNKNOWN_*: Lookup of an unregistered resource
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownScreen, "screen %q is not registered", id)
//	if errors.Is(err, errors.ErrCodeUnknownScreen) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScreen, origErr, "screen %q failed validation", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidFormula Code = "INVALID_FORMULA"
	ErrCodeInvalidSurface Code = "INVALID_SURFACE"
	ErrCodeInvalidScreen  Code = "INVALID_SCREEN"
	ErrCodeInvalidWidget  Code = "INVALID_WIDGET"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeUnknownScreen Code = "UNKNOWN_SCREEN"
	ErrCodeUnknownWidget Code = "UNKNOWN_WIDGET"

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
