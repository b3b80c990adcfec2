package repository

import (
	"context"

	"github.com/seo-microservice/internal/domain"
)

// ListingRepository reads marketplace listings, attractions, the facility
// catalog and the listing<->facility relation rows.
type ListingRepository interface {
	// GetListings returns the full listing snapshot for one registry build.
	GetListings(ctx context.Context) ([]domain.ListingMeta, error)

	// GetAttractions returns every touristic attraction.
	GetAttractions(ctx context.Context) ([]domain.AttractionMeta, error)

	// GetFacilities returns the complete facility catalog, including
	// facilities with zero listings.
	GetFacilities(ctx context.Context) ([]domain.FacilityRecord, error)

	// CountRelations returns the total number of listing<->facility relation
	// rows, used to plan batched fetches.
	CountRelations(ctx context.Context) (int, error)

	// GetRelationsBatch returns one bounded page of relation rows.
	GetRelationsBatch(ctx context.Context, limit, offset int) ([]domain.RelationRow, error)

	// TogglePublish flips the publish flag of one listing and returns the
	// updated snapshot row. Idempotent per invocation.
	TogglePublish(ctx context.Context, id int64) (*domain.ListingMeta, error)
}
