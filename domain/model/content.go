package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Content statuses.
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// Known content types and categories, as rendered by the site.
var (
	ContentTypes = []string{"podcast", "video", "live-event", "documentary", "interview-series", "article"}

	ContentCategories = []string{"politics", "administration", "leadership", "policy", "governance", "society", "general"}
)

// MediaRef points at an uploaded asset on the media CDN.
type MediaRef struct {
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Key      string `bson:"key,omitempty" json:"key,omitempty"`
	Alt      string `bson:"alt,omitempty" json:"alt,omitempty"`
	Duration int    `bson:"duration,omitempty" json:"duration,omitempty"`
	Format   string `bson:"format,omitempty" json:"format,omitempty"`
}

// Content is one catalog item (podcast episode, video, article, ...).
type Content struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Type        string        `bson:"type" json:"type"`
	Category    string        `bson:"category" json:"category"`
	Status      string        `bson:"status" json:"status"`
	Thumbnail   MediaRef      `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Audio       MediaRef      `bson:"audio,omitempty" json:"audio,omitempty"`
	Video       MediaRef      `bson:"video,omitempty" json:"video,omitempty"`
	Tags        []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Featured    bool          `bson:"featured" json:"featured"`
	PublishedAt *time.Time    `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`

	// Views lives in Redis and is filled in on read, not persisted in Mongo.
	Views int64 `bson:"-" json:"views"`
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ValidContentType reports whether t is a known content type.
func ValidContentType(t string) bool {
	return contains(ContentTypes, t)
}

// ValidContentCategory reports whether c is a known category.
func ValidContentCategory(c string) bool {
	return contains(ContentCategories, c)
}
