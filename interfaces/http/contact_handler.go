package http

import (
	"net/http"
	"strconv"

	"vibes-backend/domain/dto"
	"vibes-backend/usecase"

	"github.com/gin-gonic/gin"
)

// IContactHandler defines the interface for contact HTTP handlers
type IContactHandler interface {
	SubmitContact(ctx *gin.Context)
	SubmitServiceRequest(ctx *gin.Context)
	ListContacts(ctx *gin.Context)
	GetContact(ctx *gin.Context)
	UpdateContactStatus(ctx *gin.Context)
	DeleteContact(ctx *gin.Context)
	ContactStats(ctx *gin.Context)
}

// ContactHandler implements the contact HTTP handlers
type ContactHandler struct {
	contactUseCase usecase.IContactUseCase
}

// NewContactHandler creates a new contact handler instance
func NewContactHandler(contactUseCase usecase.IContactUseCase) IContactHandler {
	return &ContactHandler{contactUseCase: contactUseCase}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contact, err := h.contactUseCase.SubmitContact(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": contact})
}

// SubmitServiceRequest handles POST /api/contact/service
func (h *ContactHandler) SubmitServiceRequest(ctx *gin.Context) {
	var req dto.ServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	contact, err := h.contactUseCase.SubmitServiceRequest(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"success": true, "data": contact})
}

// ListContacts handles GET /api/admin/contacts
func (h *ContactHandler) ListContacts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))

	contacts, total, err := h.contactUseCase.List(ctx.Request.Context(), ctx.Query("status"), page, pageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": contacts, "total": total})
}

// GetContact handles GET /api/admin/contacts/:id
func (h *ContactHandler) GetContact(ctx *gin.Context) {
	contact, err := h.contactUseCase.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
}

// UpdateContactStatus handles PATCH /api/admin/contacts/:id/status
func (h *ContactHandler) UpdateContactStatus(ctx *gin.Context) {
	var req dto.ContactStatusUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.contactUseCase.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}

// DeleteContact handles DELETE /api/admin/contacts/:id
func (h *ContactHandler) DeleteContact(ctx *gin.Context) {
	if err := h.contactUseCase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact deleted"})
}

// ContactStats handles GET /api/admin/contacts/stats
func (h *ContactHandler) ContactStats(ctx *gin.Context) {
	stats, err := h.contactUseCase.Stats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
