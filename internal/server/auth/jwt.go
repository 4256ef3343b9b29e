// Package auth holds the server's credential primitives: bcrypt password
// hashing and HS256 session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// now is a seam for tests that need to move the clock.
var now = time.Now

// Identity is what a session token asserts about its bearer.
type Identity struct {
	UserID string
	Email  string
}

// Claims is the token payload: the bearer's identity plus the registered
// exp/iat claims.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for id that expires validity after issuance.
func GenerateToken(id Identity, secretKey []byte, validity time.Duration) (string, error) {
	issued := now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: id.UserID,
		Email:  id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(validity)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature, algorithm and expiry and returns the claims.
// Expired tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken. Both match common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
