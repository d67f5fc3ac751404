package http

import (
	"net/http"
	"strconv"

	errs "vibes-backend/pkg/errors"
	"vibes-backend/usecase"

	"github.com/gin-gonic/gin"
)

// ISocialHandler defines the interface for social media HTTP handlers
type ISocialHandler interface {
	// YouTube operations
	GetChannelInfo(ctx *gin.Context)
	GetChannelStats(ctx *gin.Context)
	GetLatestVideos(ctx *gin.Context)
	GetVideoByID(ctx *gin.Context)
	SearchVideos(ctx *gin.Context)

	// Instagram operations
	GetInstagramProfile(ctx *gin.Context)
	GetLatestPosts(ctx *gin.Context)
	GetMediaByID(ctx *gin.Context)
	GetStories(ctx *gin.Context)
	SearchPosts(ctx *gin.Context)
	GetPostsByType(ctx *gin.Context)
	GetEngagementStats(ctx *gin.Context)

	// Aggregation and admin operations
	GetAggregatedLatest(ctx *gin.Context)
	TestConnections(ctx *gin.Context)
	ClearCaches(ctx *gin.Context)
	CacheStatus(ctx *gin.Context)
}

// SocialHandler implements the social media HTTP handlers
type SocialHandler struct {
	youtubeUseCase   usecase.IYouTubeUseCase
	instagramUseCase usecase.IInstagramUseCase
	socialUseCase    usecase.ISocialUseCase
}

// NewSocialHandler creates a new social handler instance
func NewSocialHandler(youtubeUseCase usecase.IYouTubeUseCase, instagramUseCase usecase.IInstagramUseCase, socialUseCase usecase.ISocialUseCase) ISocialHandler {
	return &SocialHandler{
		youtubeUseCase:   youtubeUseCase,
		instagramUseCase: instagramUseCase,
		socialUseCase:    socialUseCase,
	}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsInvalidInput(err):
		return http.StatusBadRequest
	case errs.IsUpstreamUnavailable(err):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
}

// GetChannelInfo handles GET /api/social/youtube/channel
func (h *SocialHandler) GetChannelInfo(ctx *gin.Context) {
	channel, err := h.youtubeUseCase.GetChannelInfo(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": channel})
}

// GetChannelStats handles GET /api/social/youtube/stats
func (h *SocialHandler) GetChannelStats(ctx *gin.Context) {
	stats, err := h.youtubeUseCase.GetChannelStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// GetLatestVideos handles GET /api/social/youtube/videos
func (h *SocialHandler) GetLatestVideos(ctx *gin.Context) {
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	videos, err := h.youtubeUseCase.GetLatestVideos(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos, "count": len(videos)})
}

// GetVideoByID handles GET /api/social/youtube/videos/:videoId
func (h *SocialHandler) GetVideoByID(ctx *gin.Context) {
	video, err := h.youtubeUseCase.GetVideoByID(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// SearchVideos handles GET /api/social/youtube/search
func (h *SocialHandler) SearchVideos(ctx *gin.Context) {
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)

	videos, err := h.youtubeUseCase.SearchVideos(ctx.Request.Context(), ctx.Query("q"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": videos, "count": len(videos)})
}

// GetInstagramProfile handles GET /api/social/instagram/profile
func (h *SocialHandler) GetInstagramProfile(ctx *gin.Context) {
	profile, err := h.instagramUseCase.GetUserProfile(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": profile})
}

// GetLatestPosts handles GET /api/social/instagram/posts
func (h *SocialHandler) GetLatestPosts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))

	posts, err := h.instagramUseCase.GetLatestPosts(ctx.Request.Context(), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": posts, "count": len(posts)})
}

// GetMediaByID handles GET /api/social/instagram/posts/:mediaId
func (h *SocialHandler) GetMediaByID(ctx *gin.Context) {
	detail, err := h.instagramUseCase.GetMediaByID(ctx.Request.Context(), ctx.Param("mediaId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// GetStories handles GET /api/social/instagram/stories
func (h *SocialHandler) GetStories(ctx *gin.Context) {
	stories, err := h.instagramUseCase.GetStories(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stories, "count": len(stories)})
}

// SearchPosts handles GET /api/social/instagram/search
func (h *SocialHandler) SearchPosts(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))

	posts, err := h.instagramUseCase.SearchPosts(ctx.Request.Context(), ctx.Query("q"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": posts, "count": len(posts)})
}

// GetPostsByType handles GET /api/social/instagram/posts/type/:mediaType
func (h *SocialHandler) GetPostsByType(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))

	posts, err := h.instagramUseCase.GetPostsByType(ctx.Request.Context(), ctx.Param("mediaType"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": posts, "count": len(posts)})
}

// GetEngagementStats handles GET /api/social/instagram/engagement
func (h *SocialHandler) GetEngagementStats(ctx *gin.Context) {
	stats, err := h.instagramUseCase.GetEngagementStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// GetAggregatedLatest handles GET /api/social/latest
func (h *SocialHandler) GetAggregatedLatest(ctx *gin.Context) {
	videoLimit, _ := strconv.ParseInt(ctx.DefaultQuery("video_limit", "5"), 10, 64)
	postLimit, _ := strconv.Atoi(ctx.DefaultQuery("post_limit", "6"))

	result := h.socialUseCase.GetAggregatedLatest(ctx.Request.Context(), videoLimit, postLimit)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// TestConnections handles GET /api/social/admin/test
func (h *SocialHandler) TestConnections(ctx *gin.Context) {
	report := h.socialUseCase.TestAllConnections(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

// ClearCaches handles POST /api/social/admin/cache/clear
func (h *SocialHandler) ClearCaches(ctx *gin.Context) {
	h.socialUseCase.ClearAllCaches()
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "All social caches cleared"})
}

// CacheStatus handles GET /api/social/admin/cache/status
func (h *SocialHandler) CacheStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.socialUseCase.CacheStatusAll()})
}
