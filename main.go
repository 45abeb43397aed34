// File: tourvia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourvia/config"
	"tourvia/cron"
	"tourvia/database"
	bookingRepo "tourvia/database/repository/bookings"
	tourRepo "tourvia/database/repository/tours"
	userRepo "tourvia/database/repository/users"
	"tourvia/handlers"
	"tourvia/middleware"
	"tourvia/routes"
	"tourvia/services/booking"
	"tourvia/services/catalog"
	"tourvia/services/receipt"
	"tourvia/services/storage"
	"tourvia/services/user"
	"tourvia/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.FirebaseInit()
	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()

	storageService, err := storage.NewFirebaseStorageService(
		config.AppConfig.FirebaseCredentialsFile,
		config.AppConfig.FirebaseStorageBucket,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	toursRepo := tourRepo.NewFirestoreTourRepo()
	bookingsRepo := bookingRepo.NewFirestoreBookingRepo()
	usersRepo := userRepo.NewFirestoreUserRepo()

	// services.
	authSessions := utils.NewAuthSessionCache()
	userService := &user.DefaultUserService{
		Repo:     usersRepo,
		Auth:     utils.GetAuthClient(),
		Identity: user.NewIdentityClient(config.AppConfig.FirebaseWebAPIKey),
		Sessions: authSessions,
		Logger:   logger,
	}

	catalogService := catalog.NewCatalogService(toursRepo, logger)

	artifactStore, err := receipt.NewStore(config.AppConfig.ReceiptDir, utils.GetSessionCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize artifact store: %v", err)
	}

	delivery := cron.NewAsynqDelivery()
	cron.InitReceiptWorker(artifactStore, logger)

	workflowService := &booking.DefaultWorkflowService{
		Bookings:      bookingsRepo,
		Tours:         catalogService,
		Storage:       storageService,
		Renderer:      receipt.NewPDFRenderer(),
		Artifacts:     artifactStore,
		Sessions:      booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Delivery:      delivery,
		DownloadDelay: time.Duration(config.AppConfig.ReceiptDownloadDelayMS) * time.Millisecond,
		Logger:        logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(userService),
		Tours:        handlers.NewTourHandler(catalogService),
		Bookings:     handlers.NewBookingHandler(workflowService, bookingsRepo, logger),
		Receipts:     handlers.NewReceiptHandler(bookingsRepo, catalogService, receipt.NewPDFRenderer(), artifactStore, logger),
		AuthSessions: authSessions,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Keep the tour mirror live until shutdown.
	catalogCtx, stopCatalog := context.WithCancel(context.Background())
	go catalogService.Run(catalogCtx)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.GetFirestoreClient(),
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	stopCatalog()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
