package usecase

import (
	"context"
	"fmt"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/logger"
	errs "vibes-backend/pkg/errors"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// IUserUseCase defines the interface for admin account operations
type IUserUseCase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
}

// UserUseCase authenticates admin users and issues JWTs.
type UserUseCase struct {
	userRepo  repository.IUser
	secretKey string
}

// NewUserUseCase creates a new user use case instance.
func NewUserUseCase(userRepo repository.IUser, secretKey string) IUserUseCase {
	return &UserUseCase{userRepo: userRepo, secretKey: secretKey}
}

// Login verifies credentials and returns a signed token. Unknown users and
// wrong passwords produce the same error.
func (u *UserUseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("userName", req.UserName).Warn("Login attempt for unknown user")
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrInvalidInput)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.GetLogger().WithField("userName", req.UserName).Warn("Login attempt with wrong password")
		return nil, fmt.Errorf("invalid credentials: %w", errs.ErrInvalidInput)
	}

	claims := model.UserClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
		UserName: user.UserName,
		Role:     user.Role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token, UserName: user.UserName}, nil
}

// Register creates an admin account with a bcrypt-hashed password.
func (u *UserUseCase) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters: %w", errs.ErrInvalidInput)
	}
	if existing, err := u.userRepo.GetByUserName(ctx, req.UserName); err == nil && existing != nil {
		return nil, fmt.Errorf("user name already taken: %w", errs.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		UserName:  req.UserName,
		Password:  string(hash),
		Name:      req.Name,
		Role:      "admin",
		CreatedAt: time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Failed to create user")
		return nil, err
	}
	return user, nil
}
