package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/cache"
	"vibes-backend/infrastructure/logger"
	errs "vibes-backend/pkg/errors"
)

// InstagramCacheTTL is the default freshness window for Instagram data.
const InstagramCacheTTL = 60 * time.Minute

const (
	keyProfile    = "profile"
	keyStories    = "stories"
	keyEngagement = "engagement_stats"

	// searchWindow is how many recent posts search and type filters scan.
	searchWindow = 50
	// engagementWindow is how many recent posts engagement stats cover.
	engagementWindow = 30
)

// IInstagramUseCase defines the interface for Instagram use case operations
type IInstagramUseCase interface {
	GetUserProfile(ctx context.Context) (*model.InstagramProfile, error)
	GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error)
	GetMediaByID(ctx context.Context, mediaID string) (*model.PostDetail, error)
	GetStories(ctx context.Context) ([]model.Story, error)
	SearchPosts(ctx context.Context, query string, limit int) ([]model.Post, error)
	GetPostsByType(ctx context.Context, mediaType string, limit int) ([]model.Post, error)
	GetEngagementStats(ctx context.Context) (*model.EngagementStats, error)
	TestConnection(ctx context.Context) *dto.ConnectionStatus
	ClearCache()
	CacheStatus() map[string]cache.EntryStatus
}

// InstagramUseCase serves Instagram data through an in-memory cache. Latest
// posts additionally fall back to the last cached value when the API is
// down, stale or not, so the feed on the site never goes blank.
type InstagramUseCase struct {
	instagramRepo repository.IInstagram
	cache         *cache.Cache[any]
}

// NewInstagramUseCase creates a new Instagram use case instance.
func NewInstagramUseCase(instagramRepo repository.IInstagram, c *cache.Cache[any]) IInstagramUseCase {
	if c == nil {
		c = cache.New[any](InstagramCacheTTL)
	}
	return &InstagramUseCase{instagramRepo: instagramRepo, cache: c}
}

// GetUserProfile retrieves the configured account's profile.
func (u *InstagramUseCase) GetUserProfile(ctx context.Context) (*model.InstagramProfile, error) {
	if v, ok := u.cache.Get(keyProfile); ok {
		return v.(*model.InstagramProfile), nil
	}

	profile, err := u.instagramRepo.GetUserProfile(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to fetch Instagram profile")
		return nil, err
	}
	u.cache.Set(keyProfile, profile)
	return profile, nil
}

// GetLatestPosts retrieves the account's most recent posts. When the API is
// unreachable and a previous result exists in the cache, the stale result is
// served instead of the error.
func (u *InstagramUseCase) GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	key := fmt.Sprintf("posts_%d", limit)
	if v, ok := u.cache.Get(key); ok {
		return v.([]model.Post), nil
	}

	posts, err := u.instagramRepo.GetLatestPosts(ctx, limit)
	if err != nil {
		if v, ok := u.cache.GetStale(key); ok {
			logger.GetLogger().WithField("error", err).Warn("Instagram API unavailable, serving stale posts")
			return v.([]model.Post), nil
		}
		logger.GetLogger().WithField("error", err).Error("Failed to fetch Instagram posts")
		return nil, err
	}
	u.cache.Set(key, posts)
	return posts, nil
}

// GetMediaByID retrieves one post's full detail including carousel children.
func (u *InstagramUseCase) GetMediaByID(ctx context.Context, mediaID string) (*model.PostDetail, error) {
	if strings.TrimSpace(mediaID) == "" {
		return nil, fmt.Errorf("media id is required: %w", errs.ErrInvalidInput)
	}

	key := "media_" + mediaID
	if v, ok := u.cache.Get(key); ok {
		return v.(*model.PostDetail), nil
	}

	detail, err := u.instagramRepo.GetMediaByID(ctx, mediaID)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"mediaId": mediaID, "error": err}).Error("Failed to fetch Instagram media")
		return nil, err
	}
	u.cache.Set(key, detail)
	return detail, nil
}

// GetStories retrieves the account's active stories. Stories are ephemeral
// extras on the site, so failures degrade to an empty list instead of an
// error.
func (u *InstagramUseCase) GetStories(ctx context.Context) ([]model.Story, error) {
	if v, ok := u.cache.Get(keyStories); ok {
		return v.([]model.Story), nil
	}

	stories, err := u.instagramRepo.GetStories(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to fetch Instagram stories, returning none")
		return []model.Story{}, nil
	}
	u.cache.Set(keyStories, stories)
	return stories, nil
}

// SearchPosts filters recent post captions by a free-text query. The graph
// API has no search endpoint, so this scans the latest posts client side.
func (u *InstagramUseCase) SearchPosts(ctx context.Context, query string, limit int) ([]model.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required: %w", errs.ErrInvalidInput)
	}

	posts, err := u.GetLatestPosts(ctx, searchWindow)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]model.Post, 0)
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.FullCaption), needle) {
			matches = append(matches, post)
		}
	}
	return capPosts(matches, limit), nil
}

// GetPostsByType filters recent posts by media type.
func (u *InstagramUseCase) GetPostsByType(ctx context.Context, mediaType string, limit int) ([]model.Post, error) {
	mediaType = strings.ToUpper(strings.TrimSpace(mediaType))
	switch mediaType {
	case model.MediaTypeImage, model.MediaTypeVideo, model.MediaTypeCarousel:
	default:
		return nil, fmt.Errorf("unknown media type %q: %w", mediaType, errs.ErrInvalidInput)
	}

	posts, err := u.GetLatestPosts(ctx, searchWindow)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Post, 0)
	for _, post := range posts {
		if post.MediaType == mediaType {
			matches = append(matches, post)
		}
	}
	return capPosts(matches, limit), nil
}

func capPosts(posts []model.Post, limit int) []model.Post {
	if limit > 0 && len(posts) > limit {
		return posts[:limit]
	}
	return posts
}

// GetEngagementStats derives like/comment aggregates from the most recent
// posts.
func (u *InstagramUseCase) GetEngagementStats(ctx context.Context) (*model.EngagementStats, error) {
	if v, ok := u.cache.Get(keyEngagement); ok {
		return v.(*model.EngagementStats), nil
	}

	posts, err := u.GetLatestPosts(ctx, engagementWindow)
	if err != nil {
		return nil, err
	}

	stats := &model.EngagementStats{
		TotalPosts:  len(posts),
		LastUpdated: time.Now(),
	}
	for _, post := range posts {
		stats.TotalLikes += post.LikeCount
		stats.TotalComments += post.CommentCount
	}
	if len(posts) > 0 {
		count := float64(len(posts))
		stats.AverageLikes = int64(math.Round(float64(stats.TotalLikes) / count))
		stats.AverageComments = int64(math.Round(float64(stats.TotalComments) / count))
		stats.EngagementRate = float64(stats.TotalLikes+stats.TotalComments) / count
	}

	u.cache.Set(keyEngagement, stats)
	return stats, nil
}

// TestConnection probes the Instagram API. It never returns an error; the
// outcome is captured in the status record.
func (u *InstagramUseCase) TestConnection(ctx context.Context) *dto.ConnectionStatus {
	status := &dto.ConnectionStatus{
		Platform:  "instagram",
		Timestamp: time.Now(),
	}

	profile, err := u.instagramRepo.GetUserProfile(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Instagram connection test failed")
		status.Success = false
		status.Message = "Instagram API connection failed"
		status.Error = err.Error()
		return status
	}
	status.Success = true
	status.Message = fmt.Sprintf("Connected as @%s", profile.Username)
	return status
}

// ClearCache drops all cached Instagram data.
func (u *InstagramUseCase) ClearCache() {
	u.cache.Clear()
}

// CacheStatus reports the state of every cached Instagram key.
func (u *InstagramUseCase) CacheStatus() map[string]cache.EntryStatus {
	return u.cache.Status()
}
