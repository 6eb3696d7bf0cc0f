// Package errors defines the structured error types used across textstat.
//
// Every failure in the analysis core is terminal: input that cannot be
// loaded, configuration rejected before worker launch, or a worker that
// failed mid-run. There is no retryable category — callers receive a typed
// error or a complete result, never a degraded success.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeIO       ErrorType = "io"
	ErrorTypeConfig   ErrorType = "config"
	ErrorTypeLaunch   ErrorType = "launch"
	ErrorTypeInternal ErrorType = "internal"
)

// TextstatError is a structured error type with context.
type TextstatError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Component   string
	Recoverable bool
}

// Error implements the error interface.
func (e *TextstatError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *TextstatError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *TextstatError) Is(target error) bool {
	var t *TextstatError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *TextstatError) WithContext(key string, value interface{}) *TextstatError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithComponent adds component context.
func (e *TextstatError) WithComponent(component string) *TextstatError {
	e.Component = component

	return e
}

// Error creation functions

// NewIOError creates an input loading error.
func NewIOError(code, message string, cause error) *TextstatError {
	return &TextstatError{
		Type:        ErrorTypeIO,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *TextstatError {
	return &TextstatError{
		Type:        ErrorTypeConfig,
		Code:        code,
		Message:     message,
		Recoverable: false,
	}
}

// NewLaunchError creates a worker launch/execution error.
func NewLaunchError(code, message string, cause error) *TextstatError {
	return &TextstatError{
		Type:        ErrorTypeLaunch,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *TextstatError {
	return &TextstatError{
		Type:        ErrorTypeInternal,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: false,
	}
}

// Error inspection utilities

// IsIOError checks if an error is input-loading related.
func IsIOError(err error) bool {
	var te *TextstatError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeIO
	}

	return false
}

// IsConfigError checks if an error is configuration related.
func IsConfigError(err error) bool {
	var te *TextstatError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeConfig
	}

	return false
}

// IsLaunchError checks if an error is worker-launch related.
func IsLaunchError(err error) bool {
	var te *TextstatError
	if errors.As(err, &te) {
		return te.Type == ErrorTypeLaunch
	}

	return false
}

// IsRecoverable checks if an error is recoverable. Core analysis errors
// never are; the predicate exists so callers do not have to know that.
func IsRecoverable(err error) bool {
	var te *TextstatError
	if errors.As(err, &te) {
		return te.Recoverable
	}

	return false
}

// Common error codes.
const (
	ErrCodeInputRead      = "ERR_INPUT_READ"
	ErrCodeInputTooLarge  = "ERR_INPUT_TOO_LARGE"
	ErrCodeInvalidWorkers = "ERR_INVALID_WORKERS"
	ErrCodeEmptyTerm      = "ERR_EMPTY_TERM"
	ErrCodeInvalidFormat  = "ERR_INVALID_FORMAT"
	ErrCodeWorkerFailed   = "ERR_WORKER_FAILED"
	ErrCodeInternalError  = "ERR_INTERNAL"
)

// Helper functions for common errors

// ErrInputRead creates an input loading failure error.
func ErrInputRead(path string, cause error) *TextstatError {
	return NewIOError(ErrCodeInputRead, "could not load input: "+path, cause)
}

// ErrInvalidWorkers creates an invalid worker count error.
func ErrInvalidWorkers(count int) *TextstatError {
	return NewConfigError(
		ErrCodeInvalidWorkers,
		fmt.Sprintf("worker count must be at least 1, got %d", count),
	)
}

// ErrEmptyTerm creates an empty target term error.
func ErrEmptyTerm() *TextstatError {
	return NewConfigError(ErrCodeEmptyTerm, "target term must not be empty")
}

// ErrWorkerFailed creates a worker failure error. A failed worker aborts
// the whole run; an incomplete merge would be silently wrong.
func ErrWorkerFailed(id int, cause error) *TextstatError {
	return NewLaunchError(
		ErrCodeWorkerFailed,
		fmt.Sprintf("worker %d failed", id),
		cause,
	)
}
