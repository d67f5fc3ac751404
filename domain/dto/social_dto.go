package dto

import (
	"time"

	"vibes-backend/domain/model"
	"vibes-backend/infrastructure/cache"
)

// ConnectionStatus is the result of probing one platform API. TestConnection
// never fails; failures are reported in this record instead.
type ConnectionStatus struct {
	Platform  string    `json:"platform"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PlatformVideos is the YouTube branch of an aggregated response.
type PlatformVideos struct {
	Success bool          `json:"success"`
	Videos  []model.Video `json:"videos"`
	Error   string        `json:"error,omitempty"`
}

// PlatformPosts is the Instagram branch of an aggregated response.
type PlatformPosts struct {
	Success bool         `json:"success"`
	Posts   []model.Post `json:"posts"`
	Error   string       `json:"error,omitempty"`
}

// AggregatedLatest merges the latest content of both platforms. Either branch
// may have failed independently; the struct itself is always produced.
type AggregatedLatest struct {
	YouTube   PlatformVideos `json:"youtube"`
	Instagram PlatformPosts  `json:"instagram"`
	Timestamp time.Time      `json:"timestamp"`
}

// ConnectionReport combines the connection probes of both platforms.
type ConnectionReport struct {
	YouTube   *ConnectionStatus `json:"youtube"`
	Instagram *ConnectionStatus `json:"instagram"`
}

// CacheStatusReport combines per-platform cache introspection.
type CacheStatusReport struct {
	YouTube   map[string]cache.EntryStatus `json:"youtube"`
	Instagram map[string]cache.EntryStatus `json:"instagram"`
}
