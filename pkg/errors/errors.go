// Package errors provides structured error types for the waveplan planner.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the planning pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input and configuration validation failures
//   - MALFORMED_*: Structurally broken caller-supplied values
//   - GRAPH_*: Structural graph precondition violations
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "min_size %d exceeds max_size %d", min, max)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedPattern, origErr, "invalid pattern %q", pat)
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
	// Input and configuration validation errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

	// Prioritization pattern errors
	ErrCodeMalformedPattern Code = "MALFORMED_PATTERN"

	// Structural graph errors
	ErrCodeGraphInconsistency Code = "GRAPH_INCONSISTENCY"

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

// InconsistencyError reports that the wave partitioner found no ready unit
// while unassigned units remained. The condensation handed to the
// partitioner is acyclic by construction, so this indicates a violated
// upstream precondition; partitioning aborts rather than looping. All
// partitions produced before the failure remain valid.
type InconsistencyError struct {
	Stuck []int // condensation unit indices that could not be scheduled
}

// Error implements the error interface.
func (e *InconsistencyError) Error() string {
	if len(e.Stuck) == 0 {
		return "no ready units while unassigned units remain"
	}
	ids := make([]string, len(e.Stuck))
	for i, u := range e.Stuck {
		ids[i] = fmt.Sprintf("%d", u)
	}
	return fmt.Sprintf("no ready units while %d units remain unassigned (stuck units: %s)",
		len(e.Stuck), strings.Join(ids, ", "))
}

// Code returns the error code for this error type.
func (e *InconsistencyError) Code() Code {
	return ErrCodeGraphInconsistency
}
