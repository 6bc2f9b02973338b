package errors

import (
	"errors"
	"fmt"
)

// Error is the structured error returned across the module. Code decides the
// gRPC status, Message is safe to show a caller, and Meta travels with the
// status as details.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	return errors.As(target, &targetErr) && e.Code == targetErr.Code
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A wrapped *Error keeps its code and metadata;
// any other error becomes internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeInternal, Message: message, Cause: err}
	if inner := asError(err); inner != nil {
		wrapped.Code = inner.Code
		wrapped.Meta = inner.Meta
	}
	return wrapped
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

// Constructors for the codes the module returns

// NotFound reports a missing record
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf reports a missing record with a formatted message
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument rejects a bad request
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf rejects a bad request with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf reports a record that cannot be created twice
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition reports a request the current state cannot serve
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

// Internal reports a server-side failure
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf reports a server-side failure with a formatted message
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }
