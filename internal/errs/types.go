package errs

import (
	"errors"
	"strings"
)

// Kind classifies an Error for callers.
type Kind string

const (
	// KindInvalid means the input was rejected (validation, constraint checks).
	KindInvalid Kind = "INVALID"

	// KindNotFound means the looked-up row does not exist.
	KindNotFound Kind = "NOT_FOUND"

	// KindConflict means a uniqueness constraint was hit (e.g. duplicate username).
	KindConflict Kind = "CONFLICT"

	// KindUnauthorized means credential verification failed.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindUnavailable means the store could not be reached or the call timed out.
	KindUnavailable Kind = "UNAVAILABLE"

	// KindInternal covers everything else (malformed statements, hashing failures).
	KindInternal Kind = "INTERNAL"
)

// Sentinels for errors.Is. They carry only a Kind; an *Error matches a
// sentinel when the kinds are equal.
var (
	ErrInvalid      = &Error{Kind: KindInvalid}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrUnavailable  = &Error{Kind: KindUnavailable}
	ErrInternal     = &Error{Kind: KindInternal}
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "username", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Error is the single error type exposed by the store.
//
// Fields:
//   - Kind: category used by errors.Is and Status.
//   - Code: machine-friendly code (e.g. "USER_ALREADY_EXISTS").
//   - Message: human-friendly message, safe to show to end users when Override is set.
//   - Override: the message is specific enough that the request layer may show it as is.
//   - Errors: per-field validation errors.
type Error struct {
	Kind     Kind         `json:"-"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`

	cause error
}

// Error returns the message; the underlying cause is reachable through Unwrap.
func (e *Error) Error() string {
	if e.Message == "" {
		return strings.ToLower(string(e.Kind))
	}
	return e.Message
}

// Unwrap exposes the driver or library error this Error was built from.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error of the same Kind.
// A target without a Kind matches any *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// WithMessage returns a copy of this Error with Message replaced.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Kind:     e.Kind,
		Code:     e.Code,
		Message:  message,
		Override: e.Override,
		Errors:   e.Errors,
		cause:    e.cause,
	}
}

// WithCause returns a copy of this Error wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Kind:     e.Kind,
		Code:     e.Code,
		Message:  e.Message,
		Override: e.Override,
		Errors:   e.Errors,
		cause:    cause,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal
// when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Not Found" -> "NOT_FOUND"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
