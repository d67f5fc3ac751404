package youtube

import (
	"context"
	"fmt"
	"time"

	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	errs "vibes-backend/pkg/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Config represents YouTube API configuration. API-key mode is sufficient for
// the public read surface; OAuth credentials enable authenticated calls.
type Config struct {
	APIKey        string `json:"api_key"`
	ChannelHandle string `json:"channel_handle"`
	ChannelID     string `json:"channel_id"`
	ClientID      string `json:"client_id"`
	ClientSecret  string `json:"client_secret"`
	RedirectURL   string `json:"redirect_url"`
	AccessToken   string `json:"access_token"`
	RefreshToken  string `json:"refresh_token"`
}

// Client wraps the YouTube Data API v3 service.
type Client struct {
	service       *youtube.Service
	channelHandle string
	channelID     string
}

// NewYouTubeClient creates a new YouTube API client.
func NewYouTubeClient(ctx context.Context, config *Config) (repository.IYouTube, error) {
	// API key only mode (read-only) when no OAuth tokens are configured.
	if (config.AccessToken == "" || config.RefreshToken == "") && config.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{
			service:       service,
			channelHandle: config.ChannelHandle,
			channelID:     config.ChannelID,
		}, nil
	}

	if config.AccessToken == "" {
		return nil, fmt.Errorf("youtube client requires an API key or OAuth tokens")
	}

	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // force refresh on first use
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(oauth2Config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{
		service:       service,
		channelHandle: config.ChannelHandle,
		channelID:     config.ChannelID,
	}, nil
}

func upstream(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, errs.ErrUpstreamUnavailable, err)
}

// ResolveChannelID resolves the configured handle to a channel id. A channel's
// id never changes, so callers cache the result for the process lifetime.
func (c *Client) ResolveChannelID(ctx context.Context) (string, error) {
	if c.channelID != "" {
		return c.channelID, nil
	}

	response, err := c.service.Channels.List([]string{"id"}).
		ForHandle(c.channelHandle).
		Context(ctx).
		Do()
	if err != nil {
		return "", upstream("resolve channel id", err)
	}
	if len(response.Items) == 0 {
		return "", fmt.Errorf("channel %q: %w", c.channelHandle, errs.ErrNotFound)
	}
	return response.Items[0].Id, nil
}

// GetChannelInfo fetches channel metadata and statistics.
func (c *Client) GetChannelInfo(ctx context.Context) (*model.Channel, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics"})
	if c.channelID != "" {
		call = call.Id(c.channelID)
	} else {
		call = call.ForHandle(c.channelHandle)
	}

	response, err := call.Context(ctx).Do()
	if err != nil {
		return nil, upstream("get channel info", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("channel %q: %w", c.channelHandle, errs.ErrNotFound)
	}

	return convertChannel(response.Items[0]), nil
}

// GetLatestVideos returns the channel's most recent uploads, newest first.
func (c *Client) GetLatestVideos(ctx context.Context, channelID string, limit int64) ([]model.Video, error) {
	response, err := c.service.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream("get latest videos", err)
	}

	return convertSearchResults(response.Items), nil
}

// GetVideoByID fetches one video's full detail.
func (c *Client) GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error) {
	response, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream("get video details", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("video %q: %w", videoID, errs.ErrNotFound)
	}

	return convertVideoDetail(response.Items[0]), nil
}

// SearchVideos runs a free-text search scoped to the channel.
func (c *Client) SearchVideos(ctx context.Context, channelID, query string, limit int64) ([]model.Video, error) {
	response, err := c.service.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Q(query).
		Type("video").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream("search videos", err)
	}

	return convertSearchResults(response.Items), nil
}

func convertSearchResults(items []*youtube.SearchResult) []model.Video {
	videos := make([]model.Video, 0, len(items))
	for _, item := range items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		videos = append(videos, model.Video{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ThumbnailURL: searchThumbnail(item.Snippet.Thumbnails),
			PublishedAt:  publishedAt,
			ChannelTitle: item.Snippet.ChannelTitle,
			URL:          watchURL(item.Id.VideoId),
		})
	}
	return videos
}

func convertVideoDetail(video *youtube.Video) *model.VideoDetail {
	detail := &model.VideoDetail{}
	detail.ID = video.Id
	detail.URL = watchURL(video.Id)

	if video.Snippet != nil {
		publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)
		detail.Title = video.Snippet.Title
		detail.Description = video.Snippet.Description
		detail.ThumbnailURL = searchThumbnail(video.Snippet.Thumbnails)
		detail.PublishedAt = publishedAt
		detail.ChannelTitle = video.Snippet.ChannelTitle
		detail.Tags = video.Snippet.Tags
		detail.CategoryID = video.Snippet.CategoryId
	}
	if video.ContentDetails != nil {
		detail.Duration = video.ContentDetails.Duration
	}
	if video.Statistics != nil {
		detail.ViewCount = int64(video.Statistics.ViewCount)
		detail.LikeCount = int64(video.Statistics.LikeCount)
		detail.CommentCount = int64(video.Statistics.CommentCount)
	}
	return detail
}

func convertChannel(channel *youtube.Channel) *model.Channel {
	ch := &model.Channel{ID: channel.Id}
	if channel.Snippet != nil {
		publishedAt, _ := time.Parse(time.RFC3339, channel.Snippet.PublishedAt)
		ch.Title = channel.Snippet.Title
		ch.Description = channel.Snippet.Description
		ch.CustomURL = channel.Snippet.CustomUrl
		ch.PublishedAt = publishedAt
		ch.ThumbnailURL = searchThumbnail(channel.Snippet.Thumbnails)
	}
	if channel.Statistics != nil {
		ch.SubscriberCount = int64(channel.Statistics.SubscriberCount)
		ch.VideoCount = int64(channel.Statistics.VideoCount)
		ch.ViewCount = int64(channel.Statistics.ViewCount)
	}
	return ch
}

// searchThumbnail picks the best available thumbnail, defaulting to empty.
func searchThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	switch {
	case t.High != nil && t.High.Url != "":
		return t.High.Url
	case t.Medium != nil && t.Medium.Url != "":
		return t.Medium.Url
	case t.Default != nil:
		return t.Default.Url
	}
	return ""
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
