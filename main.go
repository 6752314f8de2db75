// File: darshanam/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darshanam/backend"
	"darshanam/config"
	"darshanam/cron"
	"darshanam/database"
	dispatchRepo "darshanam/database/repository/dispatch"
	"darshanam/handlers"
	"darshanam/middleware"
	"darshanam/models"
	"darshanam/routes"
	"darshanam/services/darshan"
	"darshanam/services/notification"
	"darshanam/services/profile"
	"darshanam/services/session"
	"darshanam/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Managed-backend client.
	backendClient := backend.NewHTTPClient(
		config.AppConfig.BackendURL,
		config.AppConfig.BackendServiceKey,
		logger,
	)

	// Repositories.
	dispatchRecords := dispatchRepo.NewMongoDispatchRepo()

	// Services.
	sessionService := &session.DefaultSessionService{
		Backend: backendClient,
		Cache:   utils.GetSessionCacheClient(),
		Logger:  logger,
	}

	mailer, err := notification.NewResendMailer(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.EmailFrom,
	)
	if err != nil {
		// Booking still works without email; sends will report unconfigured.
		logger.Sugar().Warnf("main: email disabled: %v", err)
		mailer = nil
	}
	notificationService := &notification.DefaultNotificationService{
		Mailer:  mailer,
		Records: dispatchRecords,
		Logger:  logger,
		BaseURL: config.AppConfig.PublicBaseURL,
	}

	dispatcher := notification.NewDispatcher(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDispatchQDB,
	})
	defer dispatcher.Close()

	darshanService := &darshan.DefaultService{
		Backend:    backendClient,
		Dispatcher: dispatcher,
		Grid:       models.DefaultSlotGrid,
		Logger:     logger,
	}

	profileService := &profile.DefaultProfileService{
		Backend: backendClient,
		Storage: storageService,
		Logger:  logger,
	}

	// Confirmation worker consumes the dispatch queue.
	cron.InitConfirmationWorker(notificationService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:     sessionService,
		Auth:         handlers.NewAuthHandler(sessionService, logger),
		Darshan:      handlers.NewDarshanHandler(darshanService, logger),
		Profile:      handlers.NewProfileHandler(profileService, logger),
		Notification: handlers.NewNotificationHandler(notificationService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
