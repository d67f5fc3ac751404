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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ContentRepository stores catalog items in MongoDB.
type ContentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a content repository on the "content"
// collection.
func NewContentRepository(db *mongo.Database) repository.IContent {
	return &ContentRepository{collection: db.Collection("content")}
}

func (r *ContentRepository) Create(ctx context.Context, content *model.Content) error {
	result, err := r.collection.InsertOne(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to insert content: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		content.ID = id
	}
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id string) (*model.Content, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid content id %q: %w", id, errs.ErrInvalidInput)
	}

	var content model.Content
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&content)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("content %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}
	return &content, nil
}

func (r *ContentRepository) List(ctx context.Context, filter repository.ContentFilter, limit, offset int) ([]model.Content, int64, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured {
		query["featured"] = true
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count content: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list content: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]model.Content, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode content: %w", err)
	}
	return items, total, nil
}

func (r *ContentRepository) Update(ctx context.Context, content *model.Content) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": content.ID}, content)
	if err != nil {
		return fmt.Errorf("failed to update content: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content %s: %w", content.ID.Hex(), errs.ErrNotFound)
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid content id %q: %w", id, errs.ErrInvalidInput)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("content %s: %w", id, errs.ErrNotFound)
	}
	return nil
}
