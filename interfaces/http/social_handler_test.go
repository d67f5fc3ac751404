package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	httpHandler "vibes-backend/interfaces/http"
	errs "vibes-backend/pkg/errors"
	"vibes-backend/server"
	"vibes-backend/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubYouTube overrides just the operations a test exercises; calling
// anything else panics via the embedded nil interface.
type stubYouTube struct {
	usecase.IYouTubeUseCase
	videos    []model.Video
	video     *model.VideoDetail
	err       error
	searchErr error
}

func (s *stubYouTube) GetLatestVideos(ctx context.Context, limit int64) ([]model.Video, error) {
	return s.videos, s.err
}

func (s *stubYouTube) GetVideoByID(ctx context.Context, videoID string) (*model.VideoDetail, error) {
	return s.video, s.err
}

func (s *stubYouTube) SearchVideos(ctx context.Context, query string, limit int64) ([]model.Video, error) {
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.videos, s.err
}

type stubSocial struct {
	usecase.ISocialUseCase
	latest *dto.AggregatedLatest
}

func (s *stubSocial) GetAggregatedLatest(ctx context.Context, videoLimit int64, postLimit int) *dto.AggregatedLatest {
	return s.latest
}

func newRouter(yt usecase.IYouTubeUseCase, social usecase.ISocialUseCase) *gin.Engine {
	handler := httpHandler.NewSocialHandler(yt, nil, social)
	return server.InitiateRouter(handler, nil, nil, nil, nil, nil)
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetLatestVideosEnvelope(t *testing.T) {
	router := newRouter(&stubYouTube{videos: []model.Video{{ID: "v1"}, {ID: "v2"}}}, nil)

	w, env := doRequest(t, router, http.MethodGet, "/api/social/youtube/videos?limit=2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Count)

	var videos []model.Video
	assert.NoError(t, json.Unmarshal(env.Data, &videos))
	assert.Equal(t, "v1", videos[0].ID)
}

func TestUpstreamErrorMapsToBadGateway(t *testing.T) {
	err := fmt.Errorf("youtube down: %w", errs.ErrUpstreamUnavailable)
	router := newRouter(&stubYouTube{err: err}, nil)

	w, env := doRequest(t, router, http.MethodGet, "/api/social/youtube/videos")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "youtube down")
}

func TestNotFoundMapsTo404(t *testing.T) {
	err := fmt.Errorf("video \"nope\": %w", errs.ErrNotFound)
	router := newRouter(&stubYouTube{err: err}, nil)

	w, env := doRequest(t, router, http.MethodGet, "/api/social/youtube/videos/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestInvalidInputMapsTo400(t *testing.T) {
	err := fmt.Errorf("search query is required: %w", errs.ErrInvalidInput)
	router := newRouter(&stubYouTube{searchErr: err}, nil)

	w, env := doRequest(t, router, http.MethodGet, "/api/social/youtube/search")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestAggregatedLatestAlwaysOK(t *testing.T) {
	social := &stubSocial{latest: &dto.AggregatedLatest{
		YouTube:   dto.PlatformVideos{Success: false, Error: "quota exceeded"},
		Instagram: dto.PlatformPosts{Success: true, Posts: []model.Post{{ID: "p1"}}},
		Timestamp: time.Now(),
	}}
	router := newRouter(&stubYouTube{}, social)

	w, env := doRequest(t, router, http.MethodGet, "/api/social/latest")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var latest dto.AggregatedLatest
	assert.NoError(t, json.Unmarshal(env.Data, &latest))
	assert.False(t, latest.YouTube.Success)
	assert.Equal(t, "quota exceeded", latest.YouTube.Error)
	assert.True(t, latest.Instagram.Success)
}

type stubInstagram struct {
	usecase.IInstagramUseCase
	posts []model.Post
	err   error
}

func (s *stubInstagram) GetLatestPosts(ctx context.Context, limit int) ([]model.Post, error) {
	return s.posts, s.err
}

func TestAggregatedLatestFailedBranchKeepsEmptyItems(t *testing.T) {
	yt := &stubYouTube{err: fmt.Errorf("quota exceeded: %w", errs.ErrUpstreamUnavailable)}
	ig := &stubInstagram{posts: []model.Post{{ID: "p1"}}}
	router := newRouter(yt, usecase.NewSocialUseCase(yt, ig))

	w, env := doRequest(t, router, http.MethodGet, "/api/social/latest")
	assert.Equal(t, http.StatusOK, w.Code)

	// the failed branch marshals as an empty list, never null
	assert.Contains(t, string(env.Data), `"videos":[]`)

	var latest dto.AggregatedLatest
	assert.NoError(t, json.Unmarshal(env.Data, &latest))
	assert.False(t, latest.YouTube.Success)
	assert.NotNil(t, latest.YouTube.Videos)
	assert.True(t, latest.Instagram.Success)
	assert.Len(t, latest.Instagram.Posts, 1)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newRouter(&stubYouTube{}, &stubSocial{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/social/cache/clear", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
