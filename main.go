// File: gridtrip/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridtrip/config"
	"gridtrip/database"
	catalogRepo "gridtrip/database/repository/catalog"
	itineraryRepo "gridtrip/database/repository/itinerary"
	"gridtrip/handlers"
	"gridtrip/middleware"
	"gridtrip/routes"
	"gridtrip/services/itinerary"
	"gridtrip/services/narrative"
	"gridtrip/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitItineraryStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewCachedCatalogRepo(
		catalogRepo.NewMongoCatalogRepo(),
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.CatalogCacheTTL)*time.Second,
	)
	store := itineraryRepo.NewRedisItineraryStore(
		utils.GetItineraryStoreClient(),
		time.Duration(config.AppConfig.ItineraryTTLDays)*24*time.Hour,
	)

	// services.
	gemini, err := narrative.NewGeminiClient(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	composer := narrative.NewComposer(
		gemini,
		time.Duration(config.AppConfig.NarrativeTimeoutSeconds)*time.Second,
	)

	plannerService := &itinerary.DefaultItineraryService{
		Catalog:  catalog,
		Store:    store,
		Composer: composer,
		Config: itinerary.PlannerConfig{
			DayStart:      config.AppConfig.DayStartMinute,
			DayEnd:        config.AppConfig.DayEndMinute,
			ArrivalTime:   config.AppConfig.ArrivalMinute,
			DepartureTime: config.AppConfig.DepartureMinute,
			MinGapMinutes: config.AppConfig.MinGapMinutes,
		},
	}

	itineraryHandler := handlers.NewItineraryHandler(plannerService)
	routes.RegisterRoutes(router, itineraryHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetItineraryStoreClient(), utils.GetCacheClient()},
		database.MongoClient,
	)

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
