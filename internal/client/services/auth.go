// Package services contains application services for the MCP Care client.
// This file defines the authentication service: signup, login, profile lookup
// and the in-memory session token.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/mcpcare/internal/client/client"
	"github.com/dmitrijs2005/mcpcare/internal/client/models"
)

// ErrNotLoggedIn is returned by calls that need a session when there is none.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthService defines the account operations for the CLI.
//
// Contract:
//   - Signup: create a new account; no session is started.
//   - Login: authenticate and keep the token for later calls.
//   - Profile: fetch the logged-in account. A 401 ends the session.
//   - Logout: forget the token.
//   - Ping: check server liveness.
type AuthService interface {
	Signup(ctx context.Context, form models.SignupForm) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	Profile(ctx context.Context) (*models.Profile, error)
	Logout()
	LoggedInAs() string
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client

	mu    sync.Mutex
	token string
	email string
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) Signup(ctx context.Context, form models.SignupForm) (string, error) {
	return a.client.Signup(ctx, form)
}

func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.token, a.email = token, email
	a.mu.Unlock()

	return nil
}

func (a *authService) Profile(ctx context.Context) (*models.Profile, error) {
	a.mu.Lock()
	token := a.token
	a.mu.Unlock()

	if token == "" {
		return nil, ErrNotLoggedIn
	}

	p, err := a.client.Profile(ctx, token)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.Logout()
		}
		return nil, err
	}
	return p, nil
}

func (a *authService) Logout() {
	a.mu.Lock()
	a.token, a.email = "", ""
	a.mu.Unlock()
}

// LoggedInAs returns the session's email, or "" without a session.
func (a *authService) LoggedInAs() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.email
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
