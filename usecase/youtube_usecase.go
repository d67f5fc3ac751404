package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/cache"
	"vibes-backend/infrastructure/logger"
	errs "vibes-backend/pkg/errors"
)

// YouTubeCacheTTL is the default freshness window for YouTube data.
const YouTubeCacheTTL = 30 * time.Minute

const (
	keyChannelInfo  = "channel_info"
	keyChannelID    = "channel_id"
	keyChannelStats = "channel_stats"
)

// IYouTubeUseCase defines the interface for YouTube use case operations
type IYouTubeUseCase interface {
	GetChannelInfo(ctx context.Context) (*model.Channel, error)
	GetChannelStats(ctx context.Context) (*model.ChannelStats, error)
	GetLatestVideos(ctx context.Context, limit int64) ([]model.Video, error)
	GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error)
	SearchVideos(ctx context.Context, query string, limit int64) ([]model.Video, error)
	TestConnection(ctx context.Context) *dto.ConnectionStatus
	ClearCache()
	CacheStatus() map[string]cache.EntryStatus
}

// YouTubeUseCase serves YouTube data through an in-memory cache. Every read
// checks the cache first and stores the remote result on a miss.
type YouTubeUseCase struct {
	youtubeRepo repository.IYouTube
	cache       *cache.Cache[any]
}

// NewYouTubeUseCase creates a new YouTube use case instance.
func NewYouTubeUseCase(youtubeRepo repository.IYouTube, c *cache.Cache[any]) IYouTubeUseCase {
	if c == nil {
		c = cache.New[any](YouTubeCacheTTL)
	}
	return &YouTubeUseCase{youtubeRepo: youtubeRepo, cache: c}
}

// GetChannelInfo retrieves the configured channel's metadata.
func (u *YouTubeUseCase) GetChannelInfo(ctx context.Context) (*model.Channel, error) {
	if v, ok := u.cache.Get(keyChannelInfo); ok {
		return v.(*model.Channel), nil
	}

	channel, err := u.youtubeRepo.GetChannelInfo(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to fetch channel info")
		return nil, err
	}
	u.cache.Set(keyChannelInfo, channel)
	return channel, nil
}

// GetChannelStats retrieves the channel's count statistics with a snapshot
// timestamp.
func (u *YouTubeUseCase) GetChannelStats(ctx context.Context) (*model.ChannelStats, error) {
	if v, ok := u.cache.Get(keyChannelStats); ok {
		return v.(*model.ChannelStats), nil
	}

	channel, err := u.GetChannelInfo(ctx)
	if err != nil {
		return nil, err
	}
	stats := &model.ChannelStats{
		SubscriberCount: channel.SubscriberCount,
		VideoCount:      channel.VideoCount,
		ViewCount:       channel.ViewCount,
		LastUpdated:     time.Now(),
	}
	u.cache.Set(keyChannelStats, stats)
	return stats, nil
}

// GetLatestVideos retrieves the channel's most recent uploads.
func (u *YouTubeUseCase) GetLatestVideos(ctx context.Context, limit int64) ([]model.Video, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	key := fmt.Sprintf("latest_videos_%d", limit)
	if v, ok := u.cache.Get(key); ok {
		return v.([]model.Video), nil
	}

	channelID, err := u.channelID(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := u.youtubeRepo.GetLatestVideos(ctx, channelID, limit)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to fetch latest videos")
		return nil, err
	}
	u.cache.Set(key, videos)
	return videos, nil
}

// GetVideoByID retrieves one video's full detail.
func (u *YouTubeUseCase) GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error) {
	if strings.TrimSpace(videoID) == "" {
		return nil, fmt.Errorf("video id is required: %w", errs.ErrInvalidInput)
	}

	key := "video_" + videoID
	if v, ok := u.cache.Get(key); ok {
		return v.(*model.VideoDetail), nil
	}

	video, err := u.youtubeRepo.GetVideoByID(ctx, videoID)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"videoId": videoID, "error": err}).Error("Failed to fetch video")
		return nil, err
	}
	u.cache.Set(key, video)
	return video, nil
}

// SearchVideos runs a free-text search scoped to the configured channel.
func (u *YouTubeUseCase) SearchVideos(ctx context.Context, query string, limit int64) ([]model.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search query is required: %w", errs.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	key := fmt.Sprintf("search_%s_%d", query, limit)
	if v, ok := u.cache.Get(key); ok {
		return v.([]model.Video), nil
	}

	channelID, err := u.channelID(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := u.youtubeRepo.SearchVideos(ctx, channelID, query, limit)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"query": query, "error": err}).Error("Failed to search videos")
		return nil, err
	}
	u.cache.Set(key, videos)
	return videos, nil
}

// TestConnection probes the YouTube API. It never returns an error; the
// outcome is captured in the status record.
func (u *YouTubeUseCase) TestConnection(ctx context.Context) *dto.ConnectionStatus {
	status := &dto.ConnectionStatus{
		Platform:  "youtube",
		Timestamp: time.Now(),
	}

	channel, err := u.youtubeRepo.GetChannelInfo(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("YouTube connection test failed")
		status.Success = false
		status.Message = "YouTube API connection failed"
		status.Error = err.Error()
		return status
	}
	status.Success = true
	status.Message = fmt.Sprintf("Connected to channel %q", channel.Title)
	return status
}

// ClearCache drops all cached YouTube data.
func (u *YouTubeUseCase) ClearCache() {
	u.cache.Clear()
}

// CacheStatus reports the state of every cached YouTube key.
func (u *YouTubeUseCase) CacheStatus() map[string]cache.EntryStatus {
	return u.cache.Status()
}

// channelID resolves the configured channel's id, caching the result. The id
// never changes, so a stale entry is as good as a fresh one.
func (u *YouTubeUseCase) channelID(ctx context.Context) (string, error) {
	if v, ok := u.cache.GetStale(keyChannelID); ok {
		return v.(string), nil
	}

	id, err := u.youtubeRepo.ResolveChannelID(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to resolve channel id")
		return "", err
	}
	u.cache.Set(keyChannelID, id)
	return id, nil
}
