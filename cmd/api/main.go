package main

// @title SEO Taxonomy Microservice API
// @version 1.0.0
// @description Geographic taxonomy, canonical route and indexability engine for the tourism marketplace. Builds the registry of every canonical page with curation flags and traffic counters, resolves raw request paths to canonical pages or permanent redirects, and applies operator toggles.

// @contact.name API Support
// @contact.email support@seo-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/seo-microservice/docs"
	"github.com/seo-microservice/internal/config"
	httpDelivery "github.com/seo-microservice/internal/delivery/http"
	"github.com/seo-microservice/internal/delivery/http/handler"
	"github.com/seo-microservice/internal/pkg/logger"
	"github.com/seo-microservice/internal/repository/cache"
	"github.com/seo-microservice/internal/repository/postgres"
	"github.com/seo-microservice/internal/routes"
	"github.com/seo-microservice/internal/taxonomy"
	"github.com/seo-microservice/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SEO Taxonomy Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Build the taxonomy store from the static catalog
	store, err := taxonomy.NewStore()
	if err != nil {
		log.Fatal("Failed to build taxonomy store", zap.Error(err))
	}
	log.Info("Taxonomy store built",
		zap.Int("counties", len(store.Counties())),
		zap.Int("regions", len(store.Regions())),
	)

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 7. Initialize repositories
	listingRepo := postgres.NewListingRepository(db, log)
	overrideRepo := postgres.NewOverrideRepository(db, log)
	pageviewRepo := postgres.NewPageviewRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient, log)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	combos := usecase.NewComboAggregator(store, log)
	merger := usecase.NewOverrideMerger(store, log)
	traffic := usecase.NewTrafficUseCase(
		pageviewRepo,
		log,
		cfg.Seo.TrafficLookback,
		cfg.Seo.PageviewBatchSize,
		cfg.Seo.FetchFanout,
	)
	policy := usecase.IndexabilityPolicy{MinPublished: cfg.Seo.MinPublishedForIndex}

	registryUC := usecase.NewRegistryUseCase(
		listingRepo,
		overrideRepo,
		cacheRepo,
		store,
		combos,
		merger,
		traffic,
		policy,
		log,
		cfg.Cache.RegistryCacheTTL,
		cfg.Seo.PageviewBatchSize,
		cfg.Seo.FetchFanout,
	)
	resolveUC := usecase.NewResolveUseCase(registryUC, listingRepo, store, routes.NewCodec(store), log)
	toggleUC := usecase.NewToggleUseCase(listingRepo, overrideRepo, cacheRepo, log)
	statsUC := usecase.NewStatsUseCase(registryUC, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	registryHandler := handler.NewRegistryHandler(registryUC, log)
	resolveHandler := handler.NewResolveHandler(resolveUC, log)
	toggleHandler := handler.NewToggleHandler(toggleUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		registryHandler,
		resolveHandler,
		toggleHandler,
		statsHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
