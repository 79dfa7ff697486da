package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/holdings/config"
	"github.com/epeers/holdings/docs"
	"github.com/epeers/holdings/internal/cache"
	"github.com/epeers/holdings/internal/database"
	"github.com/epeers/holdings/internal/handlers"
	"github.com/epeers/holdings/internal/middleware"
	"github.com/epeers/holdings/internal/repository"
	"github.com/epeers/holdings/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Holdings Dashboard API
// @version 1.0
// @description Read-only portfolio data for the holdings dashboard: merged company profiles, sector allocation, top holdings and price histories.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ConfigureLogging()

	policy, err := services.ParseMergePolicy(cfg.MergePolicy)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize caches
	memCache := cache.NewMemoryCache()

	// Initialize price source
	var priceSource services.PriceSource
	switch cfg.PriceSource {
	case config.PriceSourcePostgres:
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		priceSource = repository.NewPGPriceRepository(db.Pool)
	default:
		priceSource = repository.NewFilePriceRepository(cfg.PriceDir)
	}

	// Initialize services
	profileSvc := services.NewProfileService(memCache, cfg.CompanyListPath, cfg.StockProfilePath, policy)
	pricingSvc := services.NewPricingService(priceSource, memCache)

	// Enumerate tickers once at startup so a misconfigured price source shows up early
	tickers, err := pricingSvc.Tickers(ctx)
	if err != nil {
		log.Warnf("Failed to list tickers: %v", err)
	} else {
		log.Infof("Found %d tickers (%s source)", len(tickers), cfg.PriceSource)
	}

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(profileSvc)
	priceHandler := handlers.NewPriceHandler(pricingSvc)
	adminHandler := handlers.NewAdminHandler(memCache)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	handlers.RegisterRoutes(router, profileHandler, priceHandler, adminHandler)

	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
