package types

import "fmt"

// ErrorCode represents a unified error code across the engine.
type ErrorCode string

const (
	// ErrInvalidArgument is the only fail-fast condition in the engine,
	// reserved for structurally invalid calls such as an empty session ID.
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrInvalidConfig reports a strategy configuration that failed
	// validation at construction time.
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrInternalError reports a bug; it should never surface in normal
	// operation.
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
)

// Error represents a structured error with code, message, and cause.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// NewInvalidArgument creates an INVALID_ARGUMENT error for the named argument.
func NewInvalidArgument(arg, reason string) *Error {
	return NewError(ErrInvalidArgument, fmt.Sprintf("%s %s", arg, reason))
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) ErrorCode {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}
