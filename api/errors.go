// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error types for the hioload-mem library.
//
// Every failure of a copy operation is a precondition violation, not a
// recoverable runtime condition. The checked entry points return a *Error
// carrying one of the codes below; the unchecked entry points panic with the
// same value. No failure path mutates the target buffer.

package api

import "fmt"

// Sentinel errors for the four copy precondition violations plus the
// pool-layer lifetime violation. Structured errors wrap these, so callers
// can classify with errors.Is.
var (
	ErrInvertedRange     = fmt.Errorf("src end is before src start")
	ErrSourceOutOfBounds = fmt.Errorf("src is out of bounds")
	ErrDestOutOfBounds   = fmt.Errorf("dest is out of bounds")
	ErrBoundOverflow     = fmt.Errorf("range bound overflows int")
	ErrBufferReleased    = fmt.Errorf("buffer used after release")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvertedRange
	ErrCodeSourceOutOfBounds
	ErrCodeDestOutOfBounds
	ErrCodeBoundOverflow
	ErrCodeBufferReleased
)

// sentinel maps a code to the matching sentinel error for unwrapping.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeInvertedRange:
		return ErrInvertedRange
	case ErrCodeSourceOutOfBounds:
		return ErrSourceOutOfBounds
	case ErrCodeDestOutOfBounds:
		return ErrDestOutOfBounds
	case ErrCodeBoundOverflow:
		return ErrBoundOverflow
	case ErrCodeBufferReleased:
		return ErrBufferReleased
	}
	return nil
}

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

// Unwrap exposes the sentinel for the error's code, enabling errors.Is.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
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
