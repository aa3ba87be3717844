// Package errors defines the coded errors returned across dla.
//
// Every failure a caller may want to branch on carries a [Code]. Codes are
// grouped into a [Kind] so the CLI and the HTTP server can map them to exit
// behavior and status codes without listing each one:
//
//	INVALID_*                     KindInvalid      bad input or configuration
//	EMPTY_RING, RING_*            KindState        launch ring lifecycle
//	NOT_FOUND, FILE_NOT_FOUND     KindNotFound
//	UNSUPPORTED                   KindUnsupported  missing host tooling
//	INTERNAL_ERROR, anything else KindInternal
//
// Use [Is] and [GetCode] rather than comparing messages:
//
//	if errors.Is(err, errors.ErrCodeEmptyRing) {
//	    // pick a larger radius or epsilon
//	}
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidRadius    Code = "INVALID_RADIUS"
	ErrCodeInvalidThreshold Code = "INVALID_THRESHOLD"
	ErrCodeInvalidEpsilon   Code = "INVALID_EPSILON"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Launch ring lifecycle errors
	ErrCodeEmptyRing    Code = "EMPTY_RING"
	ErrCodeRingNotBuilt Code = "RING_NOT_BUILT"
	ErrCodeRingBuilt    Code = "RING_ALREADY_BUILT"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Kind groups codes by how a caller should react.
type Kind int

const (
	// KindInternal is an unexpected failure.
	KindInternal Kind = iota
	// KindInvalid is rejected input or configuration.
	KindInvalid
	// KindState is an operation the engine refuses in its current state.
	KindState
	// KindNotFound is a missing resource or file.
	KindNotFound
	// KindUnsupported is a feature this build cannot provide.
	KindUnsupported
)

// Kind returns the group c belongs to. Unknown codes are internal.
func (c Code) Kind() Kind {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidRadius, ErrCodeInvalidThreshold,
		ErrCodeInvalidEpsilon, ErrCodeInvalidFormat, ErrCodeInvalidConfig, ErrCodeInvalidPath:
		return KindInvalid
	case ErrCodeEmptyRing, ErrCodeRingNotBuilt, ErrCodeRingBuilt:
		return KindState
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return KindNotFound
	case ErrCodeUnsupported:
		return KindUnsupported
	default:
		return KindInternal
	}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	return GetCode(err).Kind()
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error // may be nil
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

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of a coded error without its code prefix
// or cause. Other errors are returned as their Error string.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
