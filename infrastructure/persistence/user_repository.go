package persistence

import (
	"context"
	"errors"
	"fmt"

	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	errs "vibes-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// UserRepository stores admin accounts in MongoDB.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a user repository on the "users" collection.
func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, bson.M{"user_name": userName}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("user %q: %w", userName, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}
