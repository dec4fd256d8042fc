package errs

import (
	"errors"
	"net/http"
)

// newError normalizes code to UPPER_CASE_WITH_UNDERSCORES, falling back to
// the kind when no code is given.
func newError(kind Kind, message string, override bool, code *string) *Error {
	formattedCode := string(kind)
	if code != nil {
		formattedCode = MakeUpperCaseWithUnderscores(*code)
	}
	return &Error{
		Kind:     kind,
		Code:     formattedCode,
		Message:  message,
		Override: override,
	}
}

// NewInvalidError creates an INVALID error, optionally carrying field errors.
func NewInvalidError(message string, override bool, code *string, errors []FieldError) *Error {
	e := newError(KindInvalid, message, override, code)
	e.Errors = errors
	return e
}

// NewNotFoundError creates a NOT_FOUND error.
func NewNotFoundError(message string, override bool, code *string) *Error {
	return newError(KindNotFound, message, override, code)
}

// NewConflictError creates a CONFLICT error.
func NewConflictError(message string, override bool, code *string) *Error {
	return newError(KindConflict, message, override, code)
}

// NewUnauthorizedError creates an UNAUTHORIZED error.
func NewUnauthorizedError(message string, override bool) *Error {
	return newError(KindUnauthorized, message, override, nil)
}

// NewUnavailableError creates an UNAVAILABLE error wrapping the connectivity failure.
//
// The message stays generic; the cause is kept for logs.
func NewUnavailableError(cause error) *Error {
	e := newError(KindUnavailable, "Service temporarily unavailable", false, nil)
	e.cause = cause
	return e
}

// NewInternalError creates an INTERNAL error with a fixed message and the real cause wrapped.
func NewInternalError(message string, cause error) *Error {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	e := newError(KindInternal, message, false, nil)
	e.cause = cause
	return e
}

// ValidationError converts a generic validation error into an INVALID error.
func ValidationError(err error) *Error {
	return NewInvalidError("Validation failed: "+err.Error(), false, nil, nil).WithCause(err)
}

// Status maps the Kind to the HTTP status a request layer should answer with.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalid:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf returns the HTTP status for any error; non-*Error values map to 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status()
	}
	return http.StatusInternalServerError
}
