package repository

import (
	"context"

	"vibes-backend/domain/model"
)

// IMailer sends operational notifications. Implementations must tolerate
// being disabled (no-op) when no mail server is configured.
type IMailer interface {
	SendContactNotification(ctx context.Context, contact *model.Contact) error
}
