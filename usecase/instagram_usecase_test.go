package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vibes-backend/domain/model"
	"vibes-backend/infrastructure/cache"
	errs "vibes-backend/pkg/errors"
	"vibes-backend/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInstagramUseCase(repo *MockInstagramRepository) (usecase.IInstagramUseCase, *testClock) {
	clock := &testClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := cache.New(usecase.InstagramCacheTTL, cache.WithClock[any](clock.Now))
	return usecase.NewInstagramUseCase(repo, c), clock
}

func TestGetLatestPostsServesStaleOnError(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, clock := newInstagramUseCase(repo)

	posts := []model.Post{{ID: "p1", Caption: "First"}}
	repo.On("GetLatestPosts", mock.Anything, 12).Return(posts, nil).Once()

	got, err := uc.GetLatestPosts(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, posts, got)

	// entry expires, the API goes down: the stale entry is served
	clock.Advance(usecase.InstagramCacheTTL + time.Hour)
	repo.On("GetLatestPosts", mock.Anything, 12).Return(nil, errors.New("rate limited")).Once()

	got, err = uc.GetLatestPosts(context.Background(), 12)
	assert.NoError(t, err)
	assert.Equal(t, posts, got)

	repo.AssertExpectations(t)
}

func TestGetLatestPostsErrorsWithoutCachedValue(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	upstreamErr := errors.New("token expired")
	repo.On("GetLatestPosts", mock.Anything, 12).Return(nil, upstreamErr).Once()

	_, err := uc.GetLatestPosts(context.Background(), 12)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestStaleFallbackIsPerKey(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetLatestPosts", mock.Anything, 12).Return([]model.Post{{ID: "p1"}}, nil).Once()
	_, err := uc.GetLatestPosts(context.Background(), 12)
	assert.NoError(t, err)

	// a different limit is a different key with no fallback entry
	upstreamErr := errors.New("down")
	repo.On("GetLatestPosts", mock.Anything, 6).Return(nil, upstreamErr).Once()
	_, err = uc.GetLatestPosts(context.Background(), 6)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestSearchPostsFiltersCaptions(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetLatestPosts", mock.Anything, 50).Return([]model.Post{
		{ID: "p1", FullCaption: "New episode with Maria"},
		{ID: "p2", FullCaption: "Behind the scenes"},
		{ID: "p3", FullCaption: "EPISODE recap and highlights"},
	}, nil).Once()

	matches, err := uc.SearchPosts(context.Background(), "episode", 10)
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "p1", matches[0].ID)
	assert.Equal(t, "p3", matches[1].ID)

	// results are capped at the requested limit
	capped, err := uc.SearchPosts(context.Background(), "episode", 1)
	assert.NoError(t, err)
	assert.Len(t, capped, 1)
	assert.Equal(t, "p1", capped[0].ID)
}

func TestSearchPostsRequiresQuery(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	_, err := uc.SearchPosts(context.Background(), "", 10)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	repo.AssertNotCalled(t, "GetLatestPosts")
}

func TestGetPostsByTypeValidatesType(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	_, err := uc.GetPostsByType(context.Background(), "REELS", 10)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	repo.On("GetLatestPosts", mock.Anything, 50).Return([]model.Post{
		{ID: "p1", MediaType: model.MediaTypeImage},
		{ID: "p2", MediaType: model.MediaTypeVideo},
	}, nil).Once()

	videos, err := uc.GetPostsByType(context.Background(), "video", 10)
	assert.NoError(t, err)
	assert.Len(t, videos, 1)
	assert.Equal(t, "p2", videos[0].ID)
}

func TestGetEngagementStats(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetLatestPosts", mock.Anything, 30).Return([]model.Post{
		{ID: "p1", LikeCount: 100, CommentCount: 10},
		{ID: "p2", LikeCount: 50, CommentCount: 20},
	}, nil).Once()

	stats, err := uc.GetEngagementStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, int64(150), stats.TotalLikes)
	assert.Equal(t, int64(30), stats.TotalComments)
	assert.Equal(t, int64(75), stats.AverageLikes)
	assert.Equal(t, int64(15), stats.AverageComments)
	assert.Equal(t, 90.0, stats.EngagementRate)
}

func TestGetEngagementStatsRoundsAverages(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetLatestPosts", mock.Anything, 30).Return([]model.Post{
		{ID: "p1", LikeCount: 100, CommentCount: 3},
		{ID: "p2", LikeCount: 51, CommentCount: 2},
	}, nil).Once()

	stats, err := uc.GetEngagementStats(context.Background())
	assert.NoError(t, err)
	// 75.5 rounds up, 2.5 rounds up
	assert.Equal(t, int64(76), stats.AverageLikes)
	assert.Equal(t, int64(3), stats.AverageComments)
}

func TestGetEngagementStatsWithNoPosts(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetLatestPosts", mock.Anything, 30).Return([]model.Post{}, nil).Once()

	stats, err := uc.GetEngagementStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPosts)
	assert.Equal(t, int64(0), stats.AverageLikes)
	assert.Equal(t, 0.0, stats.EngagementRate)
}

func TestGetStoriesDegradesToEmpty(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetStories", mock.Anything).Return(nil, errors.New("stories unavailable")).Once()

	stories, err := uc.GetStories(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, stories)
}

func TestInstagramTestConnectionNeverErrors(t *testing.T) {
	repo := new(MockInstagramRepository)
	uc, _ := newInstagramUseCase(repo)

	repo.On("GetUserProfile", mock.Anything).Return(&model.InstagramProfile{Username: "vibes"}, nil).Once()

	status := uc.TestConnection(context.Background())
	assert.True(t, status.Success)
	assert.Equal(t, "instagram", status.Platform)
	assert.Contains(t, status.Message, "@vibes")
}
