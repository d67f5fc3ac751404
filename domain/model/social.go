package model

import "time"

// Media types reported by the Instagram graph API.
const (
	MediaTypeImage    = "IMAGE"
	MediaTypeVideo    = "VIDEO"
	MediaTypeCarousel = "CAROUSEL_ALBUM"
)

// Video is the normalized shape of a YouTube search result.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PublishedAt  time.Time `json:"published_at"`
	ChannelTitle string    `json:"channel_title"`
	URL          string    `json:"url"`
}

// VideoDetail extends Video with the fields only available from a full
// videos.list lookup.
type VideoDetail struct {
	Video
	Duration     string   `json:"duration"`
	ViewCount    int64    `json:"view_count"`
	LikeCount    int64    `json:"like_count"`
	CommentCount int64    `json:"comment_count"`
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"category_id"`
}

// Channel represents YouTube channel metadata.
type Channel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CustomURL       string    `json:"custom_url"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	PublishedAt     time.Time `json:"published_at"`
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	ViewCount       int64     `json:"view_count"`
}

// ChannelStats is the count subset of Channel with a snapshot timestamp.
type ChannelStats struct {
	SubscriberCount int64     `json:"subscriber_count"`
	VideoCount      int64     `json:"video_count"`
	ViewCount       int64     `json:"view_count"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Post is the normalized shape of an Instagram media item. Caption is
// truncated for card display; FullCaption keeps the original text.
type Post struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption"`
	FullCaption  string    `json:"full_caption"`
	MediaType    string    `json:"media_type"`
	MediaURL     string    `json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Permalink    string    `json:"permalink"`
	PublishedAt  time.Time `json:"published_at"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	IsVideo      bool      `json:"is_video"`
	IsCarousel   bool      `json:"is_carousel"`
}

// PostChild is one item of a carousel album.
type PostChild struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
}

// PostDetail extends Post with the expanded children of a carousel.
type PostDetail struct {
	Post
	Children []PostChild `json:"children"`
}

// Story is an ephemeral Instagram story item.
type Story struct {
	ID          string    `json:"id"`
	MediaType   string    `json:"media_type"`
	MediaURL    string    `json:"media_url"`
	Permalink   string    `json:"permalink"`
	PublishedAt time.Time `json:"published_at"`
	IsVideo     bool      `json:"is_video"`
}

// InstagramProfile is the configured account's profile record.
type InstagramProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
	MediaCount  int64  `json:"media_count"`
}

// EngagementStats is derived from the most recent posts of the account.
type EngagementStats struct {
	TotalPosts      int       `json:"total_posts"`
	TotalLikes      int64     `json:"total_likes"`
	TotalComments   int64     `json:"total_comments"`
	AverageLikes    int64     `json:"average_likes"`
	AverageComments int64     `json:"average_comments"`
	EngagementRate  float64   `json:"engagement_rate"`
	LastUpdated     time.Time `json:"last_updated"`
}
