package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/dmitrijs2005/mcpcare/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestDocumentRoundTrip(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u := newUser()
	u.CreatedAt, u.UpdatedAt = ts, ts

	doc := toDocument(u)
	assert.True(t, doc.ID.IsZero(), "id is left for the store to assign")

	doc.ID = bson.NewObjectID()
	got := doc.toModel()

	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.Password, got.Password)
	assert.Equal(t, u.AadhaarNumber, got.AadhaarNumber)
	assert.Equal(t, ts, got.CreatedAt)
}

func TestUserDocument_BSONFieldNames(t *testing.T) {
	b, err := bson.Marshal(toDocument(&models.User{Name: "n", Email: "e", Password: "p"}))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(b, &m))

	for _, k := range []string{"name", "aadhaar_number", "mcp_card_number", "mobile_number", "email", "password", "createdAt", "updatedAt"} {
		assert.Contains(t, m, k)
	}
	assert.NotContains(t, m, "_id", "empty id must be omitted so the server assigns one")
}

func TestUniqueIndexes(t *testing.T) {
	idx := UniqueIndexes()
	require.Len(t, idx, 3)

	var keys []string
	for _, m := range idx {
		d, ok := m.Keys.(bson.D)
		require.True(t, ok)
		require.Len(t, d, 1)
		keys = append(keys, d[0].Key)
		assert.NotNil(t, m.Options)
	}
	assert.ElementsMatch(t, []string{"email", "mobile_number", "aadhaar_number"}, keys)
}

func TestMapWriteError(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}
	assert.ErrorIs(t, mapWriteError(dup), common.ErrAlreadyExists)

	other := mapWriteError(errors.New("connection reset"))
	assert.False(t, errors.Is(other, common.ErrAlreadyExists))
	assert.Contains(t, other.Error(), "db error")
}

func TestMapReadError(t *testing.T) {
	assert.ErrorIs(t, mapReadError(mongo.ErrNoDocuments), common.ErrorNotFound)

	err := mapReadError(errors.New("timeout"))
	assert.False(t, errors.Is(err, common.ErrorNotFound))
	assert.Contains(t, err.Error(), "db error")
}

func TestMongoGetUserByID_MalformedID(t *testing.T) {
	r := NewMongoRepository(nil)
	_, err := r.GetUserByID(t.Context(), "zzz")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrorNotFound))
}

func TestMongoCreate_FailureLeavesUserUntouched(t *testing.T) {
	// nothing listens on port 1, so server selection fails fast
	client, err := mongo.Connect(options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200 * time.Millisecond).
		SetConnectTimeout(200 * time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	r := NewMongoRepository(client.Database("test").Collection(CollectionName))
	r.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	u := newUser()
	_, err = r.Create(t.Context(), u)

	require.Error(t, err)
	assert.Empty(t, u.ID)
	assert.True(t, u.CreatedAt.IsZero())
	assert.True(t, u.UpdatedAt.IsZero())
}
