// Package users declares the user store contract and its PostgreSQL and
// MongoDB implementations.
package users

import (
	"context"

	"github.com/dmitrijs2005/mcpcare/internal/server/models"
)

// Repository persists users. Implementations enforce uniqueness of email,
// mobile number and Aadhaar number at write time.
type Repository interface {
	// Create inserts user and fills in the store-assigned ID and timestamps.
	// A uniqueness violation yields common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByEmail returns the user with exactly this email, password hash
	// included, or common.ErrorNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns the user without its password hash, or
	// common.ErrorNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
