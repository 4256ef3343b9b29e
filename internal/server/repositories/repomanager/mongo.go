package repomanager

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/mcpcare/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoDatabase is used when the DSN names no database.
const DefaultMongoDatabase = "mcpcare"

// MongoRepositoryManager vends MongoDB-backed repositories.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
}

// OpenMongo connects to dsn and checks the deployment is reachable.
func OpenMongo(ctx context.Context, dsn string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}

	db := client.Database(MongoDatabaseName(dsn))
	return &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db.Collection(users.CollectionName)),
	}, nil
}

// MongoDatabaseName extracts the database from the DSN path, falling back to
// DefaultMongoDatabase.
func MongoDatabaseName(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return DefaultMongoDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultMongoDatabase
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

// Migrate creates the unique indexes on email, mobile number and Aadhaar number.
func (m *MongoRepositoryManager) Migrate(ctx context.Context) error {
	return m.users.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
