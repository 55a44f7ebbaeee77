// Package errors provides structured error types for kgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the editor and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
//	if errors.Is(err, errors.ErrCodeInvalidFormat) {
//	    // Handle validation error
//	}
//
//	// Classify library errors at the boundary
//	if _, err := matrix.Derive(w); err != nil {
//	    return errors.Classify(err)
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	kio "github.com/matzehuels/kgraph/pkg/io"
	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/scene"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidShape  Code = "INVALID_MATRIX_SHAPE"
	ErrCodeInvalidPower  Code = "INVALID_POWER"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidRange  Code = "INVALID_RANGE"
	ErrCodeOverflow      Code = "WEIGHT_OVERFLOW"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNodeNotFound Code = "NODE_NOT_FOUND"
	ErrCodeEdgeNotFound Code = "EDGE_NOT_FOUND"

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

// Classify maps sentinel errors from the library packages onto coded
// errors. Errors that already carry a code are returned unchanged; nil
// stays nil; anything unrecognised becomes ErrCodeInternal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}

	switch {
	case errors.Is(err, matrix.ErrInvalidShape):
		return Wrap(ErrCodeInvalidShape, err, "matrix must be square with rows of equal length")
	case errors.Is(err, matrix.ErrInvalidPower):
		return Wrap(ErrCodeInvalidPower, err, "power must be at least 1")
	case errors.Is(err, matrix.ErrInvalidRange):
		return Wrap(ErrCodeInvalidRange, err, "weight range must satisfy 0 <= min <= max")
	case errors.Is(err, kio.ErrMalformed):
		return Wrap(ErrCodeInvalidInput, err, "matrix document is not valid JSON")
	case errors.Is(err, scene.ErrInvalidEdgeRef):
		return Wrap(ErrCodeInvalidInput, err, "edges are written i-j with node numbers from 1")
	case errors.Is(err, matrix.ErrOverflow):
		return Wrap(ErrCodeOverflow, err, "weights too large: a matrix power exceeds the int64 range")
	case errors.Is(err, scene.ErrUnknownNode):
		return Wrap(ErrCodeNodeNotFound, err, "no such node")
	case errors.Is(err, scene.ErrUnknownEdge):
		return Wrap(ErrCodeEdgeNotFound, err, "no such edge")
	case errors.Is(err, os.ErrNotExist):
		return Wrap(ErrCodeFileNotFound, err, "file not found")
	}
	return Wrap(ErrCodeInternal, err, "unexpected error")
}

// HTTPStatus returns the HTTP status code that best describes code.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidShape, ErrCodeInvalidPower, ErrCodeInvalidRange, ErrCodeOverflow:
		return http.StatusUnprocessableEntity
	case ErrCodeInvalidInput, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeFileNotFound, ErrCodeNodeNotFound, ErrCodeEdgeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
