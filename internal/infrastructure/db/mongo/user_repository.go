package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sellerhub/sellerhub-api/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index the duplicate-email contract
// relies on. Called once at startup.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.DuplicateEmailError{Email: user.Email}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           mu.ID.Hex(),
		Email:        mu.Email,
		Name:         mu.Name,
		PasswordHash: mu.PasswordHash,
		Role:         mu.Role,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
