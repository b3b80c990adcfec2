package repository

import (
	"context"
	"time"

	"github.com/seo-microservice/internal/domain"
)

// CacheRepository caches the built registry between rebuilds.
type CacheRepository interface {
	// GetRegistry returns the cached registry, or (nil, nil) on a miss.
	GetRegistry(ctx context.Context) ([]domain.PageRecord, error)

	// SetRegistry stores the built registry with a TTL.
	SetRegistry(ctx context.Context, pages []domain.PageRecord, ttl time.Duration) error

	// InvalidateRegistry drops the cached registry.
	InvalidateRegistry(ctx context.Context) error
}
