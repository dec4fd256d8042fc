// Package model holds the records read from and written to the store, and the
// request shapes the request layer hands to it.
package model

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Roles a user can register with.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// DefaultRating is stored when a submission carries no rating.
const DefaultRating = 3
