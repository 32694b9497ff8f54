// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Validation errors for request payloads.
	ErrValidation = errors.New("validation error")

	// Registration errors.
	ErrMissingField     = errors.New("all fields are required")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 6 characters long")
	ErrUsernameTaken    = errors.New("username already exists")

	// Authentication errors. ErrInvalidCredentials covers both an unknown
	// username and a wrong password so callers cannot probe which usernames
	// exist. ErrMissingIdentity is returned when an operation needs an
	// authenticated caller and the request carried none.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingIdentity    = errors.New("authentication required")

	// Token lifecycle errors.
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenBadSignature = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")

	// Authorization errors. Ownership mismatch and true absence share one
	// sentinel so a response never confirms that a foreign resource exists.
	ErrNotFoundOrDenied = errors.New("not found or access denied")
)
