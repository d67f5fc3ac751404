package http_test

import (
	"context"
	"net/http"
	"testing"

	"vibes-backend/domain/dto"
	"vibes-backend/domain/model"
	httpHandler "vibes-backend/interfaces/http"
	"vibes-backend/server"
	"vibes-backend/usecase"

	"github.com/stretchr/testify/assert"
)

type stubContent struct {
	usecase.IContentUseCase
	gotFeatured bool
}

func (s *stubContent) ListPublic(ctx context.Context, req *dto.ContentListRequest) (*dto.ContentPage, error) {
	s.gotFeatured = req.Featured
	return &dto.ContentPage{Items: []model.Content{}, Page: 1, PageSize: 20}, nil
}

func TestFeaturedRouteForcesFeaturedFilter(t *testing.T) {
	stub := &stubContent{}
	router := server.InitiateRouter(nil, nil, httpHandler.NewContentHandler(stub), nil, nil, nil)

	w, env := doRequest(t, router, http.MethodGet, "/api/content/featured")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.True(t, stub.gotFeatured)
}

func TestPublicListDoesNotForceFeatured(t *testing.T) {
	stub := &stubContent{}
	router := server.InitiateRouter(nil, nil, httpHandler.NewContentHandler(stub), nil, nil, nil)

	w, _ := doRequest(t, router, http.MethodGet, "/api/content")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, stub.gotFeatured)
}
