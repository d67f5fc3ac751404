package usecase_test

import (
	"context"

	"vibes-backend/domain/model"

	"github.com/stretchr/testify/mock"
)

// Mock implementations of the remote and persistence boundaries.

type MockYouTubeRepository struct {
	mock.Mock
}

func (m *MockYouTubeRepository) ResolveChannelID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockYouTubeRepository) GetChannelInfo(ctx context.Context) (*model.Channel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *MockYouTubeRepository) GetLatestVideos(ctx context.Context, channelID string, limit int64) ([]model.Video, error) {
	args := m.Called(ctx, channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockYouTubeRepository) GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoDetail), args.Error(1)
}

func (m *MockYouTubeRepository) SearchVideos(ctx context.Context, channelID, query string, limit int64) ([]model.Video, error) {
	args := m.Called(ctx, channelID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Video), args.Error(1)
}

type MockInstagramRepository struct {
	mock.Mock
}

func (m *MockInstagramRepository) GetUserProfile(ctx context.Context) (*model.InstagramProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramProfile), args.Error(1)
}

func (m *MockInstagramRepository) GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockInstagramRepository) GetMediaByID(ctx context.Context, mediaID string) (*model.PostDetail, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostDetail), args.Error(1)
}

func (m *MockInstagramRepository) GetStories(ctx context.Context) ([]model.Story, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Story), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, status string, limit, offset int) ([]model.Contact, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactNotification(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}
