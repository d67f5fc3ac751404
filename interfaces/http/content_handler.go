package http

import (
	"net/http"
	"strconv"

	"vibes-backend/domain/dto"
	"vibes-backend/usecase"

	"github.com/gin-gonic/gin"
)

// IContentHandler defines the interface for catalog HTTP handlers
type IContentHandler interface {
	ListPublic(ctx *gin.Context)
	ListFeatured(ctx *gin.Context)
	GetContent(ctx *gin.Context)
	ListAdmin(ctx *gin.Context)
	CreateContent(ctx *gin.Context)
	UpdateContent(ctx *gin.Context)
	DeleteContent(ctx *gin.Context)
}

// ContentHandler implements the catalog HTTP handlers
type ContentHandler struct {
	contentUseCase usecase.IContentUseCase
}

// NewContentHandler creates a new content handler instance
func NewContentHandler(contentUseCase usecase.IContentUseCase) IContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

// ListPublic handles GET /api/content
func (h *ContentHandler) ListPublic(ctx *gin.Context) {
	var req dto.ContentListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	page, err := h.contentUseCase.ListPublic(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

// ListFeatured handles GET /api/content/featured
func (h *ContentHandler) ListFeatured(ctx *gin.Context) {
	var req dto.ContentListRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	req.Featured = true

	page, err := h.contentUseCase.ListPublic(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

// GetContent handles GET /api/content/:id
func (h *ContentHandler) GetContent(ctx *gin.Context) {
	content, err := h.contentUseCase.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": content})
}

// ListAdmin handles GET /api/admin/content
func (h *ContentHandler) ListAdmin(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	result, err := h.contentUseCase.ListAdmin(ctx.Request.Context(), ctx.Query("status"), page, pageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// CreateContent handles POST /api/admin/content
func (h *ContentHandler) CreateContent(ctx *gin.Context) {
	var req dto.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	content, err := h.contentUseCase.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": content})
}

// UpdateContent handles PUT /api/admin/content/:id
func (h *ContentHandler) UpdateContent(ctx *gin.Context) {
	var req dto.ContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	content, err := h.contentUseCase.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": content})
}

// DeleteContent handles DELETE /api/admin/content/:id
func (h *ContentHandler) DeleteContent(ctx *gin.Context) {
	if err := h.contentUseCase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Content deleted"})
}
