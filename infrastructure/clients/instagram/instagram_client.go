package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	errs "vibes-backend/pkg/errors"

	"github.com/google/go-querystring/query"
)

const (
	defaultBaseURL = "https://graph.instagram.com/v12.0"

	// captionLimit is the display length of a post caption; longer captions
	// are cut and suffixed with an ellipsis. The full text stays available.
	captionLimit = 100

	mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp,like_count,comments_count"
	childFields = "id,media_type,media_url"
)

// Config represents Instagram Graph API configuration.
type Config struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	BaseURL     string `json:"base_url"`
}

// Client talks to the Instagram Graph API for the configured account.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	userID      string
}

// NewInstagramClient creates a new Instagram Graph API client.
func NewInstagramClient(config *Config) (repository.IInstagram, error) {
	if config.AccessToken == "" {
		return nil, fmt.Errorf("instagram client requires an access token")
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userID := config.UserID
	if userID == "" {
		userID = "me"
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		accessToken: config.AccessToken,
		userID:      userID,
	}, nil
}

type mediaParams struct {
	Fields      string `url:"fields"`
	Limit       int    `url:"limit,omitempty"`
	AccessToken string `url:"access_token"`
}

type profileParams struct {
	Fields      string `url:"fields"`
	AccessToken string `url:"access_token"`
}

type graphMedia struct {
	ID            string `json:"id"`
	Caption       string `json:"caption"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Permalink     string `json:"permalink"`
	Timestamp     string `json:"timestamp"`
	LikeCount     int64  `json:"like_count"`
	CommentsCount int64  `json:"comments_count"`
	Children      *struct {
		Data []graphChild `json:"data"`
	} `json:"children"`
}

type graphChild struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
}

type graphList struct {
	Data []graphMedia `json:"data"`
}

type graphProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
	MediaCount  int64  `json:"media_count"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// GetUserProfile fetches the configured account's profile record.
func (c *Client) GetUserProfile(ctx context.Context) (*model.InstagramProfile, error) {
	params := profileParams{
		Fields:      "id,username,account_type,media_count",
		AccessToken: c.accessToken,
	}

	var profile graphProfile
	if err := c.get(ctx, "/"+c.userID, params, &profile); err != nil {
		return nil, err
	}
	return &model.InstagramProfile{
		ID:          profile.ID,
		Username:    profile.Username,
		AccountType: profile.AccountType,
		MediaCount:  profile.MediaCount,
	}, nil
}

// GetLatestPosts fetches the account's most recent media, newest first.
func (c *Client) GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error) {
	params := mediaParams{
		Fields:      mediaFields,
		Limit:       limit,
		AccessToken: c.accessToken,
	}

	var list graphList
	if err := c.get(ctx, "/"+c.userID+"/media", params, &list); err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(list.Data))
	for _, item := range list.Data {
		posts = append(posts, convertPost(item))
	}
	return posts, nil
}

// GetMediaByID fetches one media item including carousel children.
func (c *Client) GetMediaByID(ctx context.Context, mediaID string) (*model.PostDetail, error) {
	params := mediaParams{
		Fields:      mediaFields + ",children{" + childFields + "}",
		AccessToken: c.accessToken,
	}

	var item graphMedia
	if err := c.get(ctx, "/"+mediaID, params, &item); err != nil {
		return nil, err
	}

	detail := &model.PostDetail{Post: convertPost(item)}
	if item.Children != nil {
		detail.Children = make([]model.PostChild, 0, len(item.Children.Data))
		for _, child := range item.Children.Data {
			detail.Children = append(detail.Children, model.PostChild{
				ID:        child.ID,
				MediaType: child.MediaType,
				MediaURL:  child.MediaURL,
			})
		}
	}
	return detail, nil
}

// GetStories fetches the account's active stories. Stories expire after 24
// hours, so an empty list is the common case.
func (c *Client) GetStories(ctx context.Context) ([]model.Story, error) {
	params := mediaParams{
		Fields:      "id,media_type,media_url,permalink,timestamp",
		AccessToken: c.accessToken,
	}

	var list graphList
	if err := c.get(ctx, "/"+c.userID+"/stories", params, &list); err != nil {
		return nil, err
	}

	stories := make([]model.Story, 0, len(list.Data))
	for _, item := range list.Data {
		stories = append(stories, model.Story{
			ID:          item.ID,
			MediaType:   item.MediaType,
			MediaURL:    item.MediaURL,
			Permalink:   item.Permalink,
			PublishedAt: parseTimestamp(item.Timestamp),
			IsVideo:     item.MediaType == model.MediaTypeVideo,
		})
	}
	return stories, nil
}

func (c *Client) get(ctx context.Context, path string, params interface{}, out interface{}) error {
	values, err := query.Values(params)
	if err != nil {
		return fmt.Errorf("failed to encode query params: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("instagram request failed: %w: %v", errs.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w: %v", errs.ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr graphError
		message := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		if resp.StatusCode == http.StatusNotFound || apiErr.Error.Code == 100 {
			return fmt.Errorf("instagram media: %s: %w", message, errs.ErrNotFound)
		}
		return fmt.Errorf("instagram api returned %d: %s: %w", resp.StatusCode, message, errs.ErrUpstreamUnavailable)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode instagram response: %w: %v", errs.ErrUpstreamUnavailable, err)
	}
	return nil
}

func convertPost(item graphMedia) model.Post {
	// The graph API only sends thumbnail_url for videos; images fall back
	// to the media itself.
	thumbnail := item.ThumbnailURL
	if thumbnail == "" {
		thumbnail = item.MediaURL
	}
	return model.Post{
		ID:           item.ID,
		Caption:      truncateCaption(item.Caption),
		FullCaption:  item.Caption,
		MediaType:    item.MediaType,
		MediaURL:     item.MediaURL,
		ThumbnailURL: thumbnail,
		Permalink:    item.Permalink,
		PublishedAt:  parseTimestamp(item.Timestamp),
		LikeCount:    item.LikeCount,
		CommentCount: item.CommentsCount,
		IsVideo:      item.MediaType == model.MediaTypeVideo,
		IsCarousel:   item.MediaType == model.MediaTypeCarousel,
	}
}

func truncateCaption(caption string) string {
	runes := []rune(caption)
	if len(runes) <= captionLimit {
		return caption
	}
	return strings.TrimSpace(string(runes[:captionLimit])) + "..."
}

// parseTimestamp handles the graph API's ISO8601 variant with a numeric
// offset and no colon ("2023-01-02T15:04:05+0000").
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02T15:04:05-0700", value); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
