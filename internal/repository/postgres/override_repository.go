package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
)

type overrideRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewOverrideRepository creates the Postgres-backed SEO zone repository.
func NewOverrideRepository(db *DB, logger *zap.Logger) repository.OverrideRepository {
	return &overrideRepository{
		db:     db,
		logger: logger,
	}
}

const overrideColumns = `
	id,
	path,
	zone_type,
	slug,
	title,
	status,
	in_menu,
	indexable,
	(EXTRACT(EPOCH FROM updated_at) * 1000)::bigint AS last_modified_ms
`

func (r *overrideRepository) GetOverrides(ctx context.Context) ([]domain.OverrideRow, error) {
	query := `SELECT ` + overrideColumns + ` FROM seo_zones ORDER BY id`

	var rows []domain.OverrideRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("query seo zones: %w", err)
	}
	return rows, nil
}

func (r *overrideRepository) ToggleStatus(ctx context.Context, id int64) (*domain.OverrideRow, error) {
	query := `
		UPDATE seo_zones
		SET status = CASE WHEN status = 'published' THEN 'unpublished' ELSE 'published' END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + overrideColumns

	var row domain.OverrideRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		r.logger.Error("failed to toggle zone status",
			zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("toggle zone status: %w", err)
	}
	return &row, nil
}

func (r *overrideRepository) ToggleIndexable(ctx context.Context, id int64) (*domain.OverrideRow, error) {
	query := `
		UPDATE seo_zones
		SET indexable = NOT indexable,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + overrideColumns

	var row domain.OverrideRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		r.logger.Error("failed to toggle zone indexability",
			zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("toggle zone indexable: %w", err)
	}
	return &row, nil
}
