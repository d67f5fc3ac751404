package repository

import (
	"context"

	"vibes-backend/domain/model"
)

// IYouTube is the remote YouTube Data API boundary. Implementations perform
// network calls only; caching happens in the use case layer.
type IYouTube interface {
	// ResolveChannelID resolves the configured channel handle to its id.
	ResolveChannelID(ctx context.Context) (string, error)
	GetChannelInfo(ctx context.Context) (*model.Channel, error)
	GetLatestVideos(ctx context.Context, channelID string, limit int64) ([]model.Video, error)
	GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error)
	SearchVideos(ctx context.Context, channelID, query string, limit int64) ([]model.Video, error)
}

// IInstagram is the remote Instagram Graph API boundary for the single
// configured account.
type IInstagram interface {
	GetUserProfile(ctx context.Context) (*model.InstagramProfile, error)
	GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error)
	GetMediaByID(ctx context.Context, mediaID string) (*model.PostDetail, error)
	GetStories(ctx context.Context) ([]model.Story, error)
}
