package http

import (
	"net/http"

	"vibes-backend/infrastructure/whatsapp"

	"github.com/gin-gonic/gin"
)

// IWhatsAppHandler defines the interface for WhatsApp HTTP handlers
type IWhatsAppHandler interface {
	GetChatLink(ctx *gin.Context)
	GetContactInfo(ctx *gin.Context)
	GetTemplates(ctx *gin.Context)
}

// WhatsAppHandler implements the WhatsApp HTTP handlers
type WhatsAppHandler struct {
	service *whatsapp.Service
}

// NewWhatsAppHandler creates a new WhatsApp handler instance
func NewWhatsAppHandler(service *whatsapp.Service) IWhatsAppHandler {
	return &WhatsAppHandler{service: service}
}

// GetChatLink handles GET /api/whatsapp/link. A template name takes
// precedence over a free-text message.
func (h *WhatsAppHandler) GetChatLink(ctx *gin.Context) {
	var link string
	if template := ctx.Query("template"); template != "" {
		link = h.service.TemplateLink(template)
	} else {
		link = h.service.ChatLink(ctx.Query("message"))
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"url": link}})
}

// GetContactInfo handles GET /api/whatsapp/info
func (h *WhatsAppHandler) GetContactInfo(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.service.ContactInfo()})
}

// GetTemplates handles GET /api/whatsapp/templates
func (h *WhatsAppHandler) GetTemplates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": h.service.Templates()})
}
