package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"vibes-backend/domain/repository"
	"vibes-backend/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize caps uploaded assets at 200 MB.
const maxUploadSize = 200 << 20

var allowedUploadTypes = map[string]string{
	"image/jpeg": "images",
	"image/png":  "images",
	"image/webp": "images",
	"audio/mpeg": "audio",
	"audio/mp4":  "audio",
	"video/mp4":  "video",
	"video/webm": "video",
}

// IUploadHandler defines the interface for media upload HTTP handlers
type IUploadHandler interface {
	UploadMedia(ctx *gin.Context)
}

// UploadHandler implements the media upload HTTP handlers
type UploadHandler struct {
	storage repository.IMediaStorage
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(storage repository.IMediaStorage) IUploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadMedia handles POST /api/admin/uploads. The asset is streamed to the
// media store under a generated key and its public URL returned.
func (h *UploadHandler) UploadMedia(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file field is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": "file too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	folder, ok := allowedUploadTypes[contentType]
	if !ok {
		ctx.JSON(http.StatusUnsupportedMediaType, gin.H{"success": false, "error": fmt.Sprintf("unsupported content type %q", contentType)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to read upload"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), ext)

	url, err := h.storage.Save(ctx.Request.Context(), key, contentType, file)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "error": err}).Error("Failed to store upload")
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"key": key, "url": url}})
}
