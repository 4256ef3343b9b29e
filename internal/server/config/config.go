// Package config handles configuration for the server component, including
// defaults, environment (.env) overlay, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSecretKey is the development signing secret. Tokens signed with it
// are forgeable by anyone who has read this file.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the MCP Care server.
//
// Fields:
//   - Port: TCP port of the HTTP API.
//   - DatabaseDSN: store connection string. A mongodb:// or mongodb+srv://
//     scheme selects MongoDB, postgres:// or postgresql:// selects PostgreSQL.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - BcryptCost: bcrypt work factor for password hashes.
//   - LogLevel: debug, info, warn or error.
//   - CORSOrigins: allowed browser origins; "*" allows any.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
type Config struct {
	Port                  string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
	LogLevel              string
	CORSOrigins           []string
	ShutdownTimeout       time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside of local development.
func (c *Config) LoadDefaults() {
	c.Port = "8081"
	c.DatabaseDSN = "mongodb://127.0.0.1:27017/mcpcare"
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = time.Hour
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.CORSOrigins = []string{"*"}
	c.ShutdownTimeout = 10 * time.Second
}

// Addr is the listen address for net/http.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is required")
	}
	if c.SecretKey == "" {
		return errors.New("secret key is required")
	}
	// port 0 asks the kernel for a free one
	if p, err := strconv.Atoi(c.Port); err != nil || p < 0 || p > 65535 {
		return errors.New("invalid port: " + c.Port)
	}
	if c.TokenValidityDuration <= 0 {
		return errors.New("token validity must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens would be signed with DefaultSecretKey.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadConfig builds a Config by applying defaults, then overlaying values from
// the environment (including a .env file), an optional JSON file and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
