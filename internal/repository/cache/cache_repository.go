package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
)

const registryKey = "seo:registry:pages"

type cacheRepository struct {
	redis  *Redis
	logger *zap.Logger
}

// NewCacheRepository creates the Redis-backed registry cache.
func NewCacheRepository(r *Redis, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		redis:  r,
		logger: logger,
	}
}

func (r *cacheRepository) GetRegistry(ctx context.Context) ([]domain.PageRecord, error) {
	raw, err := r.redis.Client().Get(ctx, registryKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached registry: %w", err)
	}

	var pages []domain.PageRecord
	if err := json.Unmarshal(raw, &pages); err != nil {
		// A corrupt entry behaves like a miss; the next build overwrites it.
		r.logger.Warn("Dropping unreadable registry cache entry", zap.Error(err))
		return nil, nil
	}
	return pages, nil
}

func (r *cacheRepository) SetRegistry(ctx context.Context, pages []domain.PageRecord, ttl time.Duration) error {
	raw, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	if err := r.redis.Client().Set(ctx, registryKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set cached registry: %w", err)
	}
	r.logger.Debug("Registry cached",
		zap.Int("pages", len(pages)),
		zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) InvalidateRegistry(ctx context.Context) error {
	if err := r.redis.Client().Del(ctx, registryKey).Err(); err != nil {
		return fmt.Errorf("invalidate cached registry: %w", err)
	}
	r.logger.Debug("Registry cache invalidated")
	return nil
}
