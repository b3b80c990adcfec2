package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/config"
	"github.com/seo-microservice/internal/pkg/logger"
	"github.com/seo-microservice/internal/repository/cache"
	"github.com/seo-microservice/internal/repository/postgres"
	redisRepo "github.com/seo-microservice/internal/repository/redis"
	"github.com/seo-microservice/internal/taxonomy"
	"github.com/seo-microservice/internal/usecase"
	"github.com/seo-microservice/internal/worker"
	registryWorker "github.com/seo-microservice/internal/worker/registry"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Registry Rebuild Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.Bool("prewarm_registry", cfg.Worker.PrewarmRegistry))

	// 3. Build the taxonomy store
	store, err := taxonomy.NewStore()
	if err != nil {
		log.Fatal("Failed to build taxonomy store", zap.Error(err))
	}

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

	// 6. Initialize repositories
	listingRepo := postgres.NewListingRepository(db, log)
	overrideRepo := postgres.NewOverrideRepository(db, log)
	pageviewRepo := postgres.NewPageviewRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases (the prewarm path rebuilds the full registry)
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

	// 8. Initialize workers
	rebuildWorker := registryWorker.NewRebuildWorker(
		streamRepo,
		cacheRepo,
		registryUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		cfg.Worker.PrewarmRegistry,
		log,
	)

	// 9. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(rebuildWorker)

	// 10. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
