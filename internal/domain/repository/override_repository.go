package repository

import (
	"context"

	"github.com/seo-microservice/internal/domain"
)

// OverrideRepository reads and curates the persisted manual override
// ("zone") table.
type OverrideRepository interface {
	// GetOverrides returns every override row.
	GetOverrides(ctx context.Context) ([]domain.OverrideRow, error)

	// ToggleStatus flips published/unpublished on one zone row.
	ToggleStatus(ctx context.Context, id int64) (*domain.OverrideRow, error)

	// ToggleIndexable flips the indexable flag on one zone row.
	ToggleIndexable(ctx context.Context, id int64) (*domain.OverrideRow, error)
}
