package repository

import (
	"context"
	"time"

	"github.com/seo-microservice/internal/domain"
)

// PageviewRepository reads raw pageview events for traffic aggregation.
type PageviewRepository interface {
	// CountEventsSince returns how many events fall inside the lookback,
	// used to plan batched fetches.
	CountEventsSince(ctx context.Context, since time.Time) (int, error)

	// GetEventsBatch returns one bounded page of events recorded at or
	// after since, ordered by timestamp then id so offsets are stable.
	GetEventsBatch(ctx context.Context, since time.Time, limit, offset int) ([]domain.PageviewEvent, error)
}
