// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrPoolExhausted is returned by acquire when no free slot remains.
	// It is a recoverable condition: release a slot and retry, spill to an
	// overflow structure, or drop the work item.
	ErrPoolExhausted = fmt.Errorf("pool exhausted")

	// ErrHandleNotLive is returned when releasing a slot that is not
	// currently live (double release, or release before acquire).
	ErrHandleNotLive = fmt.Errorf("handle not live")

	// ErrForeignHandle is returned when a handle or buffer does not belong
	// to the pool it is released into.
	ErrForeignHandle = fmt.Errorf("handle does not belong to this pool")

	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrClosed          = fmt.Errorf("resource is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeExhausted
	ErrCodeNotLive
	ErrCodeForeign
	ErrCodeClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel, so errors.Is matches a
// structured error against the package-level sentinels.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeExhausted:
		return ErrPoolExhausted
	case ErrCodeNotLive:
		return ErrHandleNotLive
	case ErrCodeForeign:
		return ErrForeignHandle
	case ErrCodeClosed:
		return ErrClosed
	}
	return nil
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
