// Package errs defines the error type returned across the data store boundary.
//
// Every failure (store, hashing, authentication, validation) travels through
// the same *Error type, tagged with a Kind so callers can tell
// "wrong password" apart from "database offline" without parsing messages.
package errs
