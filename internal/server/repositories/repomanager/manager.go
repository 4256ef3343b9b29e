// Package repomanager opens the configured store and vends its repositories.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/users"
)

// Supported store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// RepositoryManager owns a store connection.
type RepositoryManager interface {
	// Users returns the user repository bound to this store.
	Users() users.Repository
	// Migrate brings the schema (tables or indexes) up to date.
	Migrate(ctx context.Context) error
	// Close releases the connection.
	Close(ctx context.Context) error
}

// Driver picks the store driver from the DSN scheme.
func Driver(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported dsn scheme %q", u.Scheme)
	}
}

// Open connects to the store named by dsn and runs its migrations.
func Open(ctx context.Context, dsn string) (RepositoryManager, error) {
	driver, err := Driver(dsn)
	if err != nil {
		return nil, err
	}

	var m RepositoryManager
	switch driver {
	case DriverMongo:
		m, err = OpenMongo(ctx, dsn)
	default:
		m, err = OpenPostgres(ctx, dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := m.Migrate(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
