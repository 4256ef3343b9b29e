// Package common defines shared constants and sentinel errors used across
// the server and the CLI client. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors. ErrPasswordMismatch and ErrMissingField both match
	// ErrValidation through errors.Is.
	ErrValidation       = errors.New("validation error")
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", ErrValidation)
	ErrMissingField     = fmt.Errorf("%w: required field missing", ErrValidation)

	// Auth errors. An expired token is also an invalid one.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)
