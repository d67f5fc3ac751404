package repository

import (
	"context"

	"vibes-backend/domain/model"
)

// ContentFilter narrows a catalog listing.
type ContentFilter struct {
	Type     string
	Category string
	Featured bool
	// Status is empty for public listings (published only is applied by the
	// use case) and set explicitly for admin listings.
	Status string
}

// IContent is the persistent store for catalog items.
type IContent interface {
	Create(ctx context.Context, content *model.Content) error
	GetByID(ctx context.Context, id string) (*model.Content, error)
	List(ctx context.Context, filter ContentFilter, limit, offset int) ([]model.Content, int64, error)
	Update(ctx context.Context, content *model.Content) error
	Delete(ctx context.Context, id string) error
}

// IContentAnalytics tracks per-item view counters. Implementations must be
// safe to call with analytics disabled (no-op, zero counts).
type IContentAnalytics interface {
	IncrementViews(ctx context.Context, contentID string) (int64, error)
	GetViews(ctx context.Context, contentID string) (int64, error)
}
