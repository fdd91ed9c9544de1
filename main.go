package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointly/catalogue"
	"appointly/config"
	"appointly/database"
	appointmentRepo "appointly/database/repository/appointment"
	"appointly/handlers"
	"appointly/middleware"
	"appointly/routes"
	"appointly/services/booking"
	"appointly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.MongoDBName)

	cacheClient, err := utils.NewCacheClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisCacheDB,
	)
	if err != nil {
		// The catalogue client falls back to remote calls without a cache.
		logger.Sugar().Warnf("main: redis unavailable, catalogue caching disabled: %v", err)
		cacheClient = nil
	}

	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create indexes: %v", err)
	}

	// External catalogue client.
	catalogueClient := catalogue.NewHTTPClient(
		config.AppConfig.CatalogueBaseURL,
		time.Duration(config.AppConfig.CatalogueTimeoutSecs)*time.Second,
		cacheClient,
		time.Duration(config.AppConfig.CatalogueCacheTTLSecs)*time.Second,
		logger,
	)

	// Services.
	bookingService := booking.NewDefaultBookingService(apptRepo, catalogueClient, logger)

	// Handlers.
	appointmentHandler := handlers.NewAppointmentHandler(bookingService, logger)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, appointmentHandler)

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

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: error disconnecting from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
