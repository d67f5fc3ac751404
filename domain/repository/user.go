package repository

import (
	"context"

	"vibes-backend/domain/model"
)

// IUser is the persistent store for admin accounts.
type IUser interface {
	GetByUserName(ctx context.Context, userName string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
