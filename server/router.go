package server

import (
	"net/http"
	"time"

	httpHandler "vibes-backend/interfaces/http"
	"vibes-backend/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	socialHandler httpHandler.ISocialHandler,
	contactHandler httpHandler.IContactHandler,
	contentHandler httpHandler.IContentHandler,
	uploadHandler httpHandler.IUploadHandler,
	whatsAppHandler httpHandler.IWhatsAppHandler,
	userHandler httpHandler.IUserHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://vibesunplugged.com", "https://admin.vibesunplugged.com", "http://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	api := router.Group("api")

	if userHandler != nil {
		api.POST("/auth/login", userHandler.Login)
	}

	// Social aggregation routes (public reads)
	if socialHandler != nil {
		social := api.Group("/social")
		{
			social.GET("/latest", socialHandler.GetAggregatedLatest)

			youtube := social.Group("/youtube")
			{
				youtube.GET("/channel", socialHandler.GetChannelInfo)
				youtube.GET("/stats", socialHandler.GetChannelStats)
				youtube.GET("/videos", socialHandler.GetLatestVideos)
				youtube.GET("/videos/:videoId", socialHandler.GetVideoByID)
				youtube.GET("/search", socialHandler.SearchVideos)
			}

			instagram := social.Group("/instagram")
			{
				instagram.GET("/profile", socialHandler.GetInstagramProfile)
				instagram.GET("/posts", socialHandler.GetLatestPosts)
				instagram.GET("/posts/:mediaId", socialHandler.GetMediaByID)
				instagram.GET("/posts/type/:mediaType", socialHandler.GetPostsByType)
				instagram.GET("/stories", socialHandler.GetStories)
				instagram.GET("/search", socialHandler.SearchPosts)
				instagram.GET("/engagement", socialHandler.GetEngagementStats)
			}
		}
	}

	// Contact submissions are public; management is admin-only below.
	if contactHandler != nil {
		api.POST("/contact", contactHandler.SubmitContact)
		api.POST("/contact/service", contactHandler.SubmitServiceRequest)
	}

	// Catalog reads are public.
	if contentHandler != nil {
		api.GET("/content", contentHandler.ListPublic)
		api.GET("/content/featured", contentHandler.ListFeatured)
		api.GET("/content/:id", contentHandler.GetContent)
	}

	if whatsAppHandler != nil {
		api.GET("/whatsapp/link", whatsAppHandler.GetChatLink)
		api.GET("/whatsapp/info", whatsAppHandler.GetContactInfo)
		api.GET("/whatsapp/templates", whatsAppHandler.GetTemplates)
	}

	// Admin surface: everything below requires a valid token.
	admin := api.Group("/admin")
	admin.Use(middleware.Auth())
	{
		if socialHandler != nil {
			admin.GET("/social/test", socialHandler.TestConnections)
			admin.GET("/social/cache/status", socialHandler.CacheStatus)
			admin.POST("/social/cache/clear", socialHandler.ClearCaches)
		}
		if contactHandler != nil {
			admin.GET("/contacts", contactHandler.ListContacts)
			admin.GET("/contacts/stats", contactHandler.ContactStats)
			admin.GET("/contacts/:id", contactHandler.GetContact)
			admin.PATCH("/contacts/:id/status", contactHandler.UpdateContactStatus)
			admin.DELETE("/contacts/:id", contactHandler.DeleteContact)
		}
		if contentHandler != nil {
			admin.GET("/content", contentHandler.ListAdmin)
			admin.POST("/content", contentHandler.CreateContent)
			admin.PUT("/content/:id", contentHandler.UpdateContent)
			admin.DELETE("/content/:id", contentHandler.DeleteContent)
		}
		if uploadHandler != nil {
			admin.POST("/uploads", uploadHandler.UploadMedia)
		}
		if userHandler != nil {
			admin.POST("/users", userHandler.Register)
		}
	}

	return router
}
