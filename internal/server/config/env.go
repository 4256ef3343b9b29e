package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvMongoURI    = "MONGO_URI"
	EnvDatabaseURI = "DATABASE_URI"
	EnvJWTSecret   = "JWT_SECRET"
	EnvPort        = "PORT"
	EnvTokenTTL    = "TOKEN_TTL"
	EnvBcryptCost  = "BCRYPT_COST"
	EnvLogLevel    = "LOG_LEVEL"
	EnvCORSOrigins = "CORS_ORIGINS"
)

// dotenvPath is the file loaded into the environment before parsing.
var dotenvPath = ".env"

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first; variables already set in the process
// environment take precedence over it. Unset or unparsable values leave the
// current setting untouched.
func parseEnv(config *Config) {
	if _, err := os.Stat(dotenvPath); err == nil {
		_ = godotenv.Load(dotenvPath)
	}

	if v := envString(EnvDatabaseURI); v != "" {
		config.DatabaseDSN = v
	}
	// MONGO_URI wins when both are set.
	if v := envString(EnvMongoURI); v != "" {
		config.DatabaseDSN = v
	}
	if v := envString(EnvJWTSecret); v != "" {
		config.SecretKey = v
	}
	if v := envString(EnvPort); v != "" {
		config.Port = v
	}
	if v := envString(EnvLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := envString(EnvTokenTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.TokenValidityDuration = d
		}
	}
	if v := envString(EnvBcryptCost); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.BcryptCost = n
		}
	}
	if v := envString(EnvCORSOrigins); v != "" {
		config.CORSOrigins = splitList(v)
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
