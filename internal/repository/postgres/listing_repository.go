package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
	"github.com/seo-microservice/internal/taxonomy"
)

type listingRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewListingRepository creates the Postgres-backed listing repository.
func NewListingRepository(db *DB, logger *zap.Logger) repository.ListingRepository {
	return &listingRepository{
		db:     db,
		logger: logger,
	}
}

// listingRow is the raw scan target; county/city text is normalized into
// the lookup keys before leaving the repository.
type listingRow struct {
	ID             int64  `db:"id"`
	IsPublished    bool   `db:"is_published"`
	Slug           string `db:"slug"`
	Title          string `db:"title"`
	TypeKey        string `db:"type_key"`
	Judet          string `db:"judet"`
	City           string `db:"city"`
	LastModifiedMs int64  `db:"last_modified_ms"`
}

func (r *listingRepository) GetListings(ctx context.Context) ([]domain.ListingMeta, error) {
	query := `
		SELECT
			id,
			is_published,
			slug,
			title,
			property_type AS type_key,
			judet,
			city,
			(EXTRACT(EPOCH FROM updated_at) * 1000)::bigint AS last_modified_ms
		FROM listings
		ORDER BY id
	`

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}

	listings := make([]domain.ListingMeta, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, domain.ListingMeta{
			ID:             row.ID,
			IsPublished:    row.IsPublished,
			Slug:           row.Slug,
			Title:          row.Title,
			TypeKey:        row.TypeKey,
			JudetKey:       taxonomy.Normalize(row.Judet),
			CityKey:        taxonomy.Normalize(row.City),
			LastModifiedMs: row.LastModifiedMs,
		})
	}
	return listings, nil
}

func (r *listingRepository) GetAttractions(ctx context.Context) ([]domain.AttractionMeta, error) {
	query := `
		SELECT
			id,
			is_published,
			slug,
			title,
			(EXTRACT(EPOCH FROM updated_at) * 1000)::bigint AS last_modified_ms
		FROM attractions
		ORDER BY id
	`

	var attractions []domain.AttractionMeta
	if err := r.db.SelectContext(ctx, &attractions, query); err != nil {
		return nil, fmt.Errorf("query attractions: %w", err)
	}
	return attractions, nil
}

func (r *listingRepository) GetFacilities(ctx context.Context) ([]domain.FacilityRecord, error) {
	query := `
		SELECT id::text AS id, name
		FROM facilities
		ORDER BY name, id
	`

	var facilities []domain.FacilityRecord
	if err := r.db.SelectContext(ctx, &facilities, query); err != nil {
		return nil, fmt.Errorf("query facilities: %w", err)
	}
	return facilities, nil
}

func (r *listingRepository) CountRelations(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM listing_facilities`

	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count relations: %w", err)
	}
	return total, nil
}

func (r *listingRepository) GetRelationsBatch(ctx context.Context, limit, offset int) ([]domain.RelationRow, error) {
	query := `
		SELECT
			l.id AS listing_id,
			l.property_type AS listing_type,
			l.judet AS listing_county,
			l.is_published AS listing_published,
			f.id::text AS facility_id,
			f.name AS facility_name
		FROM listing_facilities lf
		JOIN listings l ON l.id = lf.listing_id
		JOIN facilities f ON f.id = lf.facility_id
		ORDER BY lf.listing_id, lf.facility_id
		LIMIT $1 OFFSET $2
	`

	var rows []domain.RelationRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("query relation batch: %w", err)
	}
	return rows, nil
}

func (r *listingRepository) TogglePublish(ctx context.Context, id int64) (*domain.ListingMeta, error) {
	query := `
		UPDATE listings
		SET is_published = NOT is_published,
			updated_at = NOW()
		WHERE id = $1
		RETURNING
			id,
			is_published,
			slug,
			title,
			property_type AS type_key,
			judet,
			city,
			(EXTRACT(EPOCH FROM updated_at) * 1000)::bigint AS last_modified_ms
	`

	var row listingRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		r.logger.Error("failed to toggle listing publish state",
			zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("toggle listing publish: %w", err)
	}

	return &domain.ListingMeta{
		ID:             row.ID,
		IsPublished:    row.IsPublished,
		Slug:           row.Slug,
		Title:          row.Title,
		TypeKey:        row.TypeKey,
		JudetKey:       taxonomy.Normalize(row.Judet),
		CityKey:        taxonomy.Normalize(row.City),
		LastModifiedMs: row.LastModifiedMs,
	}, nil
}
