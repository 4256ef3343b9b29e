package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mcpcare/internal/flagx"
	"github.com/dmitrijs2005/mcpcare/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept both "1h" style
// strings and integer nanoseconds.
type JsonConfig struct {
	Port                  string         `json:"port"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	LogLevel              string         `json:"log_level"`
	CORSOrigins           []string       `json:"cors_origins"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config (if any) and copies every
// non-zero field into config. An unreadable file or invalid JSON panics, as a
// misconfigured server should not start.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Port != "" {
		config.Port = c.Port
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration > 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if len(c.CORSOrigins) > 0 {
		config.CORSOrigins = c.CORSOrigins
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
