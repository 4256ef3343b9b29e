package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsMatchErrValidation(t *testing.T) {
	assert.True(t, errors.Is(ErrPasswordMismatch, ErrValidation))
	assert.True(t, errors.Is(ErrMissingField, ErrValidation))
	assert.False(t, errors.Is(ErrPasswordMismatch, ErrMissingField))
	assert.False(t, errors.Is(ErrAlreadyExists, ErrValidation))
}

func TestExpiredTokenIsInvalidToken(t *testing.T) {
	assert.True(t, errors.Is(ErrTokenExpired, ErrInvalidToken))
	assert.False(t, errors.Is(ErrInvalidToken, ErrTokenExpired))
}
