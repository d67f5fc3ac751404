package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	errs "vibes-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ContactRepository stores contact submissions in MongoDB.
type ContactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository creates a contact repository on the "contacts"
// collection.
func NewContactRepository(db *mongo.Database) repository.IContact {
	return &ContactRepository{collection: db.Collection("contacts")}
}

func (r *ContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		contact.ID = id
	}
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid contact id %q: %w", id, errs.ErrInvalidInput)
	}

	var contact model.Contact
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("contact %s: %w", id, errs.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return &contact, nil
}

func (r *ContactRepository) List(ctx context.Context, status string, limit, offset int) ([]model.Contact, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := make([]model.Contact, 0, limit)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, total, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid contact id %q: %w", id, errs.ErrInvalidInput)
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update contact status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("contact %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid contact id %q: %w", id, errs.ErrInvalidInput)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("contact %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	cursor, err := r.collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate contact stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode contact stats: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
