package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibes-backend/infrastructure/cache"
	instagramclient "vibes-backend/infrastructure/clients/instagram"
	youtubeclient "vibes-backend/infrastructure/clients/youtube"
	"vibes-backend/infrastructure/configuration"
	"vibes-backend/infrastructure/email"
	"vibes-backend/infrastructure/logger"
	"vibes-backend/infrastructure/persistence"
	"vibes-backend/infrastructure/storage"
	"vibes-backend/infrastructure/whatsapp"
	httpHandler "vibes-backend/interfaces/http"
	"vibes-backend/server"
	"vibes-backend/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Social platform clients. Either platform may be unconfigured; its
	// endpoints are simply not registered.
	socialHandler := initiateSocialHandler(ctx)

	// MongoDB-backed features degrade to disabled when Mongo is unreachable.
	mongoDb, err := persistence.NewMongoDb(
		configuration.C.Database.Mongo.Host,
		configuration.C.Database.Mongo.Port,
		configuration.C.Database.Mongo.User,
		configuration.C.Database.Mongo.Password,
		configuration.C.Database.Mongo.Name,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("MongoDB not available - continuing without Mongo features")
		mongoDb = nil
	} else {
		pingCtx, cancelPing := context.WithTimeout(ctx, 3*time.Second)
		if err := mongoDb.Client().Ping(pingCtx, nil); err != nil {
			logger.GetLogger().WithField("error", err).Warn("MongoDB ping failed - continuing without Mongo features")
			mongoDb = nil
		} else {
			logger.GetLogger().Info("MongoDB connected successfully")
		}
		cancelPing()
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - view counters disabled")
		redisClient = nil
	} else {
		logger.GetLogger().Info("Redis client initialized successfully")
	}

	mailer := email.NewMailer(email.Config{
		Host:     configuration.C.Email.Host,
		Port:     configuration.C.Email.Port,
		User:     configuration.C.Email.User,
		Password: configuration.C.Email.Password,
		From:     configuration.C.Email.From,
		To:       configuration.C.Email.To,
	})

	var contactHandler httpHandler.IContactHandler
	var contentHandler httpHandler.IContentHandler
	var userHandler httpHandler.IUserHandler
	if mongoDb != nil {
		contactRepository := persistence.NewContactRepository(mongoDb)
		contactHandler = httpHandler.NewContactHandler(usecase.NewContactUseCase(contactRepository, mailer))

		contentRepository := persistence.NewContentRepository(mongoDb)
		contentAnalytics := cache.NewContentAnalytics(redisClient)
		contentHandler = httpHandler.NewContentHandler(usecase.NewContentUseCase(contentRepository, contentAnalytics))

		userRepository := persistence.NewUserRepository(mongoDb)
		userHandler = httpHandler.NewUserHandler(usecase.NewUserUseCase(userRepository, app.SecretKey))
	} else {
		logger.GetLogger().Info("Contact, content and auth features disabled (no MongoDB)")
	}

	var uploadHandler httpHandler.IUploadHandler
	if configuration.C.Storage.Bucket != "" {
		mediaStorage, err := storage.NewS3Storage(ctx,
			configuration.C.Storage.Region,
			configuration.C.Storage.Bucket,
			configuration.C.Storage.PublicURL,
		)
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("S3 storage not available - uploads disabled")
		} else {
			uploadHandler = httpHandler.NewUploadHandler(mediaStorage)
		}
	} else {
		logger.GetLogger().Info("S3 bucket not configured - uploads disabled")
	}

	var whatsAppHandler httpHandler.IWhatsAppHandler
	if waService, err := whatsapp.NewService(configuration.C.WhatsApp.PhoneNumber, configuration.C.WhatsApp.DefaultMessage); err == nil {
		whatsAppHandler = httpHandler.NewWhatsAppHandler(waService)
	} else {
		logger.GetLogger().Info("WhatsApp number not configured - chat links disabled")
	}

	router := server.InitiateRouter(socialHandler, contactHandler, contentHandler, uploadHandler, whatsAppHandler, userHandler)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateSocialHandler builds the platform clients and their caching use
// cases from configuration. Returns nil when neither platform is configured.
func initiateSocialHandler(ctx context.Context) httpHandler.ISocialHandler {
	youtubeTTL := usecase.YouTubeCacheTTL
	if m := configuration.C.Cache.YouTubeTTLMinutes; m > 0 {
		youtubeTTL = time.Duration(m) * time.Minute
	}
	instagramTTL := usecase.InstagramCacheTTL
	if m := configuration.C.Cache.InstagramTTLMinutes; m > 0 {
		instagramTTL = time.Duration(m) * time.Minute
	}

	var youtubeUC usecase.IYouTubeUseCase
	ytCfg := configuration.C.YouTube
	if ytCfg.APIKey != "" || ytCfg.AccessToken != "" {
		youtubeClient, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
			APIKey:        ytCfg.APIKey,
			ChannelHandle: ytCfg.ChannelHandle,
			ChannelID:     ytCfg.ChannelID,
			ClientID:      ytCfg.ClientID,
			ClientSecret:  ytCfg.ClientSecret,
			RedirectURL:   ytCfg.RedirectURI,
			AccessToken:   ytCfg.AccessToken,
			RefreshToken:  ytCfg.RefreshToken,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to initialize YouTube client - YouTube endpoints disabled")
		} else {
			youtubeUC = usecase.NewYouTubeUseCase(youtubeClient, cache.New[any](youtubeTTL))
		}
	}

	var instagramUC usecase.IInstagramUseCase
	igCfg := configuration.C.Instagram
	if igCfg.AccessToken != "" {
		instagramClient, err := instagramclient.NewInstagramClient(&instagramclient.Config{
			AccessToken: igCfg.AccessToken,
			UserID:      igCfg.UserID,
		})
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to initialize Instagram client - Instagram endpoints disabled")
		} else {
			instagramUC = usecase.NewInstagramUseCase(instagramClient, cache.New[any](instagramTTL))
		}
	}

	if youtubeUC == nil && instagramUC == nil {
		logger.GetLogger().Warn("No social platform configured - social endpoints disabled")
		return nil
	}
	if youtubeUC == nil {
		youtubeUC = usecase.NewDisabledYouTubeUseCase()
	}
	if instagramUC == nil {
		instagramUC = usecase.NewDisabledInstagramUseCase()
	}

	socialUC := usecase.NewSocialUseCase(youtubeUC, instagramUC)
	return httpHandler.NewSocialHandler(youtubeUC, instagramUC, socialUC)
}
