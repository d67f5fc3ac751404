package usecase

import (
	"context"
	"fmt"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/infrastructure/cache"
	errs "vibes-backend/pkg/errors"
)

// Disabled use cases stand in when a platform has no credentials. Reads fail
// with an upstream error; probes report the missing configuration.

type disabledYouTube struct{}

// NewDisabledYouTubeUseCase returns a use case for an unconfigured YouTube
// integration.
func NewDisabledYouTubeUseCase() IYouTubeUseCase { return disabledYouTube{} }

func errYouTubeDisabled() error {
	return fmt.Errorf("youtube integration not configured: %w", errs.ErrUpstreamUnavailable)
}

func (disabledYouTube) GetChannelInfo(context.Context) (*model.Channel, error) {
	return nil, errYouTubeDisabled()
}

func (disabledYouTube) GetChannelStats(context.Context) (*model.ChannelStats, error) {
	return nil, errYouTubeDisabled()
}

func (disabledYouTube) GetLatestVideos(context.Context, int64) ([]model.Video, error) {
	return nil, errYouTubeDisabled()
}

func (disabledYouTube) GetVideoByID(context.Context, string) (*model.VideoDetail, error) {
	return nil, errYouTubeDisabled()
}

func (disabledYouTube) SearchVideos(context.Context, string, int64) ([]model.Video, error) {
	return nil, errYouTubeDisabled()
}

func (disabledYouTube) TestConnection(context.Context) *dto.ConnectionStatus {
	return &dto.ConnectionStatus{
		Platform:  "youtube",
		Success:   false,
		Message:   "YouTube integration not configured",
		Error:     errYouTubeDisabled().Error(),
		Timestamp: time.Now(),
	}
}

func (disabledYouTube) ClearCache() {}

func (disabledYouTube) CacheStatus() map[string]cache.EntryStatus {
	return map[string]cache.EntryStatus{}
}

type disabledInstagram struct{}

// NewDisabledInstagramUseCase returns a use case for an unconfigured
// Instagram integration.
func NewDisabledInstagramUseCase() IInstagramUseCase { return disabledInstagram{} }

func errInstagramDisabled() error {
	return fmt.Errorf("instagram integration not configured: %w", errs.ErrUpstreamUnavailable)
}

func (disabledInstagram) GetUserProfile(context.Context) (*model.InstagramProfile, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) GetLatestPosts(context.Context, int) ([]model.Post, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) GetMediaByID(context.Context, string) (*model.PostDetail, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) GetStories(context.Context) ([]model.Story, error) {
	return []model.Story{}, nil
}

func (disabledInstagram) SearchPosts(context.Context, string, int) ([]model.Post, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) GetPostsByType(context.Context, string, int) ([]model.Post, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) GetEngagementStats(context.Context) (*model.EngagementStats, error) {
	return nil, errInstagramDisabled()
}

func (disabledInstagram) TestConnection(context.Context) *dto.ConnectionStatus {
	return &dto.ConnectionStatus{
		Platform:  "instagram",
		Success:   false,
		Message:   "Instagram integration not configured",
		Error:     errInstagramDisabled().Error(),
		Timestamp: time.Now(),
	}
}

func (disabledInstagram) ClearCache() {}

func (disabledInstagram) CacheStatus() map[string]cache.EntryStatus {
	return map[string]cache.EntryStatus{}
}
