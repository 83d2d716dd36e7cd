// Package errors provides a typed error system for exit code handling.
//
// Exit code conventions:
//   - 1: Runtime errors (build tooling missing, unreadable descriptor files)
//   - 2: Validation/usage errors (invalid flags, malformed input)
package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents improper input or configuration and maps to
// exit code 2.
type ValidationError struct {
	Message string
	Cause   error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause for error chain inspection.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// RuntimeError represents a failure during execution and maps to exit
// code 1.
type RuntimeError struct {
	Message string
	Cause   error
}

// Error implements the error interface for RuntimeError.
func (e *RuntimeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause for error chain inspection.
func (e *RuntimeError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a ValidationError with the given message and
// cause.
func NewValidationError(msg string, cause error) error {
	return &ValidationError{Message: msg, Cause: cause}
}

// NewRuntimeError creates a RuntimeError with the given message and cause.
func NewRuntimeError(msg string, cause error) error {
	return &RuntimeError{Message: msg, Cause: cause}
}

// GetExitCode extracts the exit code for an error: 2 for validation
// errors, 1 for everything else.
func GetExitCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return 2
	}
	return 1
}
