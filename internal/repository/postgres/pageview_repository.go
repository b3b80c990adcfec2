package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
)

// pgUndefinedColumn is the SQLSTATE for a missing column. Pageview tables
// predate the anon_id column on some installs, so batch reads fall back to
// a reduced column set exactly once per call.
const pgUndefinedColumn = "42703"

type pageviewRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPageviewRepository creates the Postgres-backed pageview event repository.
func NewPageviewRepository(db *DB, logger *zap.Logger) repository.PageviewRepository {
	return &pageviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *pageviewRepository) CountEventsSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM pageview_events WHERE created_at >= $1`

	var total int
	if err := r.db.GetContext(ctx, &total, query, since); err != nil {
		return 0, fmt.Errorf("count pageview events: %w", err)
	}
	return total, nil
}

func (r *pageviewRepository) GetEventsBatch(ctx context.Context, since time.Time, limit, offset int) ([]domain.PageviewEvent, error) {
	query := `
		SELECT path, anon_id, created_at AS timestamp
		FROM pageview_events
		WHERE created_at >= $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	var events []domain.PageviewEvent
	err := r.db.SelectContext(ctx, &events, query, since, limit, offset)
	if err == nil {
		return events, nil
	}
	if !isUndefinedColumn(err) {
		return nil, fmt.Errorf("query pageview batch: %w", err)
	}

	r.logger.Warn("Pageview schema mismatch, retrying with reduced column set",
		zap.Error(err))

	// Older schema: no anon_id and no id tiebreaker. Uniques degrade to
	// views for these installs.
	fallback := `
		SELECT path, '' AS anon_id, created_at AS timestamp
		FROM pageview_events
		WHERE created_at >= $1
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`
	events = events[:0]
	if err := r.db.SelectContext(ctx, &events, fallback, since, limit, offset); err != nil {
		return nil, fmt.Errorf("query pageview batch (reduced): %w", err)
	}
	return events, nil
}

func isUndefinedColumn(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn
}
