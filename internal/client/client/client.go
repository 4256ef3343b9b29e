package client

import (
	"context"

	"github.com/dmitrijs2005/mcpcare/internal/client/models"
)

// Client is the API surface the CLI needs.
type Client interface {
	// Signup creates an account and returns the server's confirmation message.
	Signup(ctx context.Context, form models.SignupForm) (string, error)
	// Login returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// Profile returns the token owner's account, or nil if it no longer exists.
	Profile(ctx context.Context, token string) (*models.Profile, error)
	// Ping checks that the server answers its health probe.
	Ping(ctx context.Context) error
}
