package usecase_test

import (
	"context"
	"errors"
	"testing"

	"vibes-backend/domain/model"
	"vibes-backend/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSocialUseCase(yt *MockYouTubeRepository, ig *MockInstagramRepository) usecase.ISocialUseCase {
	ytUC, _ := newYouTubeUseCase(yt)
	igUC, _ := newInstagramUseCase(ig)
	return usecase.NewSocialUseCase(ytUC, igUC)
}

func TestGetAggregatedLatestBothSucceed(t *testing.T) {
	yt := new(MockYouTubeRepository)
	ig := new(MockInstagramRepository)

	yt.On("ResolveChannelID", mock.Anything).Return("UC123", nil).Once()
	yt.On("GetLatestVideos", mock.Anything, "UC123", int64(5)).Return([]model.Video{{ID: "v1"}}, nil).Once()
	ig.On("GetLatestPosts", mock.Anything, 6).Return([]model.Post{{ID: "p1"}}, nil).Once()

	result := newSocialUseCase(yt, ig).GetAggregatedLatest(context.Background(), 5, 6)

	assert.True(t, result.YouTube.Success)
	assert.Len(t, result.YouTube.Videos, 1)
	assert.True(t, result.Instagram.Success)
	assert.Len(t, result.Instagram.Posts, 1)
	assert.False(t, result.Timestamp.IsZero())
}

func TestGetAggregatedLatestYouTubeFails(t *testing.T) {
	yt := new(MockYouTubeRepository)
	ig := new(MockInstagramRepository)

	yt.On("ResolveChannelID", mock.Anything).Return("", errors.New("quota exceeded")).Once()
	ig.On("GetLatestPosts", mock.Anything, 6).Return([]model.Post{{ID: "p1"}}, nil).Once()

	result := newSocialUseCase(yt, ig).GetAggregatedLatest(context.Background(), 5, 6)

	assert.False(t, result.YouTube.Success)
	assert.Contains(t, result.YouTube.Error, "quota exceeded")
	assert.NotNil(t, result.YouTube.Videos)
	assert.Empty(t, result.YouTube.Videos)
	assert.True(t, result.Instagram.Success)
	assert.Len(t, result.Instagram.Posts, 1)
}

func TestGetAggregatedLatestInstagramFails(t *testing.T) {
	yt := new(MockYouTubeRepository)
	ig := new(MockInstagramRepository)

	yt.On("ResolveChannelID", mock.Anything).Return("UC123", nil).Once()
	yt.On("GetLatestVideos", mock.Anything, "UC123", int64(5)).Return([]model.Video{{ID: "v1"}}, nil).Once()
	ig.On("GetLatestPosts", mock.Anything, 6).Return(nil, errors.New("token expired")).Once()

	result := newSocialUseCase(yt, ig).GetAggregatedLatest(context.Background(), 5, 6)

	assert.True(t, result.YouTube.Success)
	assert.False(t, result.Instagram.Success)
	assert.Contains(t, result.Instagram.Error, "token expired")
}

func TestTestAllConnections(t *testing.T) {
	yt := new(MockYouTubeRepository)
	ig := new(MockInstagramRepository)

	yt.On("GetChannelInfo", mock.Anything).Return(&model.Channel{Title: "Vibes"}, nil).Once()
	ig.On("GetUserProfile", mock.Anything).Return(nil, errors.New("bad token")).Once()

	report := newSocialUseCase(yt, ig).TestAllConnections(context.Background())

	assert.True(t, report.YouTube.Success)
	assert.False(t, report.Instagram.Success)
	assert.Contains(t, report.Instagram.Error, "bad token")
}

func TestClearAllCachesAndStatus(t *testing.T) {
	yt := new(MockYouTubeRepository)
	ig := new(MockInstagramRepository)

	yt.On("GetChannelInfo", mock.Anything).Return(&model.Channel{ID: "UC123"}, nil).Once()
	ig.On("GetUserProfile", mock.Anything).Return(&model.InstagramProfile{Username: "vibes"}, nil).Once()

	ytUC, _ := newYouTubeUseCase(yt)
	igUC, _ := newInstagramUseCase(ig)
	social := usecase.NewSocialUseCase(ytUC, igUC)

	_, err := ytUC.GetChannelInfo(context.Background())
	assert.NoError(t, err)
	_, err = igUC.GetUserProfile(context.Background())
	assert.NoError(t, err)

	status := social.CacheStatusAll()
	assert.Len(t, status.YouTube, 1)
	assert.Len(t, status.Instagram, 1)

	social.ClearAllCaches()
	status = social.CacheStatusAll()
	assert.Empty(t, status.YouTube)
	assert.Empty(t, status.Instagram)
}
