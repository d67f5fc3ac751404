package cache

import (
	"context"

	"vibes-backend/domain/repository"

	"github.com/redis/go-redis/v9"
)

const viewKeyPrefix = "content:views:"

// ContentAnalytics keeps per-item view counters in Redis. With no Redis
// client configured every call is a no-op returning zero.
type ContentAnalytics struct {
	client *redis.Client
}

// NewContentAnalytics creates the Redis-backed view counter store.
func NewContentAnalytics(client *redis.Client) repository.IContentAnalytics {
	return &ContentAnalytics{client: client}
}

func (a *ContentAnalytics) IncrementViews(ctx context.Context, contentID string) (int64, error) {
	if a.client == nil {
		return 0, nil
	}
	return a.client.Incr(ctx, viewKeyPrefix+contentID).Result()
}

func (a *ContentAnalytics) GetViews(ctx context.Context, contentID string) (int64, error) {
	if a.client == nil {
		return 0, nil
	}
	views, err := a.client.Get(ctx, viewKeyPrefix+contentID).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return views, err
}
