package dto

import (
	"github.com/seo-microservice/internal/domain"
)

// RegistryResponse is the full merged page registry.
type RegistryResponse struct {
	Pages     []domain.PageRecord `json:"pages"`
	BuiltAtMs int64               `json:"built_at_ms"`
	FromCache bool                `json:"from_cache"`
}

// ResolveResponse is the outcome of resolving a raw path. Status is 200 for
// a canonical hit (Page set) or 301 for a resolvable non-canonical path
// (Location set).
type ResolveResponse struct {
	Status   int                `json:"status"`
	Location string             `json:"location,omitempty"`
	Page     *domain.PageRecord `json:"page,omitempty"`
}

// ToggledPage is the post-toggle state of the curated row.
type ToggledPage struct {
	ID             string            `json:"id"`
	Status         domain.PageStatus `json:"status"`
	Indexable      bool              `json:"indexable"`
	InMenu         bool              `json:"in_menu"`
	LastModifiedMs int64             `json:"last_modified_ms"`
}

// ToggleResponse wraps ToggledPage per the operator UI contract.
type ToggleResponse struct {
	Page ToggledPage `json:"page"`
}

// RegistryStats summarizes the merged registry.
type RegistryStats struct {
	TotalPages        int            `json:"total_pages"`
	PagesByKind       map[string]int `json:"pages_by_kind"`
	IndexablePages    int            `json:"indexable_pages"`
	InconsistentPages int            `json:"inconsistent_pages"`
	OverridePages     int            `json:"override_pages"`
	TotalListings     int            `json:"total_listings"`
	PublishedListings int            `json:"published_listings"`
}
