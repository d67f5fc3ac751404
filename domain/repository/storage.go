package repository

import (
	"context"
	"io"
)

// IMediaStorage uploads assets to the hosted media CDN and returns their
// public location.
type IMediaStorage interface {
	Save(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}
