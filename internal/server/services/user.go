// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login with JWT issuance, token
// verification and profile lookup.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/dmitrijs2005/mcpcare/internal/server/auth"
	"github.com/dmitrijs2005/mcpcare/internal/server/config"
	"github.com/dmitrijs2005/mcpcare/internal/server/models"
	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/repomanager"
)

// SignupInput carries the fields of a signup request.
type SignupInput struct {
	Name            string
	AadhaarNumber   string
	MCPCardNumber   string
	MobileNumber    string
	Email           string
	Password        string
	ConfirmPassword string
}

// Validate checks the password confirmation first and then that every field
// is present. Whitespace-only values count as missing.
func (in SignupInput) Validate() error {
	if in.Password != in.ConfirmPassword {
		return common.ErrPasswordMismatch
	}
	for _, v := range []string{in.Name, in.AadhaarNumber, in.MCPCardNumber, in.MobileNumber, in.Email, in.Password} {
		if strings.TrimSpace(v) == "" {
			return common.ErrMissingField
		}
	}
	return nil
}

// UserService provides the account operations:
// - Signup: validate, hash and store a new user
// - Login: verify credentials and mint a token
// - Authenticate: verify a token
// - Profile: load a user without the password hash
type UserService struct {
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

// NewUserService constructs a UserService using the repository manager and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

// Signup stores a new user with a bcrypt hash in place of the password.
// Validation failures match common.ErrValidation and never reach the store;
// duplicates surface as common.ErrAlreadyExists.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:          in.Name,
		AadhaarNumber: in.AadhaarNumber,
		MCPCardNumber: in.MCPCardNumber,
		MobileNumber:  in.MobileNumber,
		Email:         in.Email,
		Password:      hash,
	}

	user, err = s.repomanager.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks email and password and returns a signed token. Unknown email,
// empty input and wrong password all yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error searching user: %w", err)
	}

	ok, err := auth.CheckPassword(password, user.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	return auth.GenerateToken(auth.Identity{UserID: user.ID, Email: user.Email}, s.jwtSecret, s.tokenValidity)
}

// Authenticate verifies token and returns its claims.
func (s *UserService) Authenticate(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}
	return auth.ParseToken(token, s.jwtSecret)
}

// Profile returns the user without password. A user that no longer exists
// yields (nil, nil).
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return user, nil
}
