// Package common defines shared sentinel errors used across the storage
// and service layers of HelpNet. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Constraint violations surfaced at commit/insert time.
	ErrDuplicateIdentity = errors.New("username or email already taken")
	ErrDanglingReference = errors.New("referenced user does not exist")

	// Validation / credential errors.
	ErrValidation    = errors.New("validation error")
	ErrMalformedHash = errors.New("malformed password hash")
)
