package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
	"github.com/seo-microservice/internal/usecase"
	"github.com/seo-microservice/internal/worker"
)

// RebuildWorker consumes listing-change events and invalidates the cached
// registry so the next read rebuilds it. With prewarm enabled it rebuilds
// eagerly instead of waiting for traffic.
type RebuildWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	registryUC   *usecase.RegistryUseCase
	consumerName string
	maxRetries   int
	prewarm      bool
}

func NewRebuildWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	registryUC *usecase.RegistryUseCase,
	consumerGroup string,
	maxRetries int,
	prewarm bool,
	logger *zap.Logger,
) *RebuildWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &RebuildWorker{
		BaseWorker:   worker.NewBaseWorker("registry-rebuild", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		registryUC:   registryUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
		prewarm:      prewarm,
	}
}

func (w *RebuildWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RebuildWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Bool("prewarm", w.prewarm))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamListingEvents, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamListingEvents, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	retries := make(map[string]int)

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}

			if err := w.processMessage(ctx, msg); err != nil {
				retries[msg.ID]++
				if retries[msg.ID] < w.maxRetries {
					logger.Warn("Message processing failed, will retry",
						zap.String("message_id", msg.ID),
						zap.Int("attempt", retries[msg.ID]),
						zap.Error(err))
					continue
				}
				// Give up so the message does not stay pending forever.
				logger.Error("Message processing failed, giving up",
					zap.String("message_id", msg.ID),
					zap.Int("attempts", retries[msg.ID]),
					zap.Error(err))
			}
			delete(retries, msg.ID)

			if err := w.streamRepo.AckMessage(ctx, domain.StreamListingEvents, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Error("Failed to ack message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}

func (w *RebuildWorker) processMessage(ctx context.Context, msg domain.StreamMessage) error {
	logger := w.Logger()

	var event domain.ListingChangeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		// A malformed event is still a registry-invalidating signal;
		// log it and fall through to invalidation.
		logger.Warn("Failed to parse listing change event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	} else {
		logger.Info("Listing change event received",
			zap.Int64("listing_id", event.ListingID),
			zap.String("action", event.Action))
	}

	if err := w.cacheRepo.InvalidateRegistry(ctx); err != nil {
		return fmt.Errorf("invalidate registry: %w", err)
	}

	if w.prewarm {
		if _, _, err := w.registryUC.GetRegistry(ctx, true); err != nil {
			// The cache is already invalidated; the next request rebuilds.
			logger.Warn("Registry prewarm failed", zap.Error(err))
		}
	}

	return nil
}
