package repository

import (
	"context"

	"vibes-backend/domain/model"
)

// IContact is the persistent store for contact submissions.
type IContact interface {
	Create(ctx context.Context, contact *model.Contact) error
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	// List returns a page of submissions, newest first. status filters when
	// non-empty.
	List(ctx context.Context, status string, limit, offset int) ([]model.Contact, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	// CountByStatus returns submission counts keyed by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
