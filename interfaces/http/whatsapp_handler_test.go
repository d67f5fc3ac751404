package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"vibes-backend/infrastructure/whatsapp"
	httpHandler "vibes-backend/interfaces/http"
	"vibes-backend/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newWhatsAppRouter(t *testing.T) *gin.Engine {
	t.Helper()
	service, err := whatsapp.NewService("+917800844260", "Hello!")
	assert.NoError(t, err)
	handler := httpHandler.NewWhatsAppHandler(service)
	return server.InitiateRouter(nil, nil, nil, nil, handler, nil)
}

func TestGetChatLinkWithTemplate(t *testing.T) {
	router := newWhatsAppRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/whatsapp/link?template=pricing")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data struct {
		URL string `json:"url"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.URL, "https://api.whatsapp.com/send?phone=")
	assert.Contains(t, data.URL, "pricing+information")
}

func TestGetChatLinkWithMessage(t *testing.T) {
	router := newWhatsAppRouter(t)

	_, env := doRequest(t, router, http.MethodGet, "/api/whatsapp/link?message=Hi%20team")
	var data struct {
		URL string `json:"url"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data.URL, "text=Hi+team")
}

func TestGetWhatsAppContactInfo(t *testing.T) {
	router := newWhatsAppRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/whatsapp/info")
	assert.Equal(t, http.StatusOK, w.Code)

	var info whatsapp.ContactInfo
	assert.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "+91 78008 442 60", info.FormattedPhone)
	assert.Equal(t, "https://wa.me/917800844260", info.BusinessLink)
	assert.True(t, info.IsValid)
}

func TestGetWhatsAppTemplates(t *testing.T) {
	router := newWhatsAppRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/whatsapp/templates")
	assert.Equal(t, http.StatusOK, w.Code)

	var templates map[string]string
	assert.NoError(t, json.Unmarshal(env.Data, &templates))
	assert.Len(t, templates, 7)
	assert.Contains(t, templates, "general")
	assert.Contains(t, templates, "consultation")
}
