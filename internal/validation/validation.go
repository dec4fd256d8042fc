// Package validation checks request shapes before they reach the store.
//
// It uses the `validator` library to enforce rules defined in struct tags
// and extracts validation errors into field errors the client can
// understand.
package validation
