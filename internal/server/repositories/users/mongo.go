package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/dmitrijs2005/mcpcare/internal/server/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

// userDocument is the stored shape of a user. Timestamps keep the camelCase
// createdAt/updatedAt names of existing collections.
type userDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Name          string        `bson:"name"`
	AadhaarNumber string        `bson:"aadhaar_number"`
	MCPCardNumber string        `bson:"mcp_card_number"`
	MobileNumber  string        `bson:"mobile_number"`
	Email         string        `bson:"email"`
	Password      string        `bson:"password,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt"`
}

func toDocument(u *models.User) userDocument {
	return userDocument{
		Name:          u.Name,
		AadhaarNumber: u.AadhaarNumber,
		MCPCardNumber: u.MCPCardNumber,
		MobileNumber:  u.MobileNumber,
		Email:         u.Email,
		Password:      u.Password,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (d userDocument) toModel() *models.User {
	return &models.User{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		AadhaarNumber: d.AadhaarNumber,
		MCPCardNumber: d.MCPCardNumber,
		MobileNumber:  d.MobileNumber,
		Email:         d.Email,
		Password:      d.Password,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// UniqueIndexes lists the unique indexes the users collection needs.
func UniqueIndexes() []mongo.IndexModel {
	fields := []string{"email", "mobile_number", "aadhaar_number"}
	idx := make([]mongo.IndexModel, 0, len(fields))
	for _, f := range fields {
		idx = append(idx, mongo.IndexModel{
			Keys:    bson.D{{Key: f, Value: 1}},
			Options: options.Index().SetUnique(true).SetName(f + "_1"),
		})
	}
	return idx
}

type MongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll, now: time.Now}
}

// EnsureIndexes creates the unique indexes if they are missing.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.coll.Indexes().CreateMany(ctx, UniqueIndexes()); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := toDocument(user)
	// BSON dates carry millisecond precision
	ts := r.now().UTC().Truncate(time.Millisecond)
	doc.CreatedAt, doc.UpdatedAt = ts, ts

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, mapWriteError(err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, fmt.Errorf("db error: unexpected inserted id %T", res.InsertedID)
	}

	user.ID = id.Hex()
	user.CreatedAt, user.UpdatedAt = doc.CreatedAt, doc.UpdatedAt

	return user, nil
}

func (r *MongoRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		return nil, mapReadError(err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	opts := options.FindOne().SetProjection(bson.D{{Key: "password", Value: 0}})

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}, opts).Decode(&doc); err != nil {
		return nil, mapReadError(err)
	}
	return doc.toModel(), nil
}

func mapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", common.ErrAlreadyExists, err)
	}
	return fmt.Errorf("db error: %w", err)
}

func mapReadError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
