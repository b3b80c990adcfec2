package domain

// ListingMeta is the read-only per-build snapshot of one listing.
// JudetKey and CityKey carry normalized county/city text.
type ListingMeta struct {
	ID             int64  `json:"id" db:"id"`
	IsPublished    bool   `json:"is_published" db:"is_published"`
	Slug           string `json:"slug" db:"slug"`
	Title          string `json:"title" db:"title"`
	TypeKey        string `json:"type_key" db:"type_key"`
	JudetKey       string `json:"judet_key" db:"judet_key"`
	CityKey        string `json:"city_key" db:"city_key"`
	LastModifiedMs int64  `json:"last_modified_ms" db:"last_modified_ms"`
}

// AttractionMeta is the per-build snapshot of one touristic attraction.
type AttractionMeta struct {
	ID             int64  `json:"id" db:"id"`
	IsPublished    bool   `json:"is_published" db:"is_published"`
	Slug           string `json:"slug" db:"slug"`
	Title          string `json:"title" db:"title"`
	LastModifiedMs int64  `json:"last_modified_ms" db:"last_modified_ms"`
}

// RelationRow is one flat listing<->facility relation row as fetched from
// the datastore. County and type carry raw (un-normalized) text.
type RelationRow struct {
	ListingID        int64  `json:"listing_id" db:"listing_id"`
	ListingType      string `json:"listing_type" db:"listing_type"`
	ListingCounty    string `json:"listing_county" db:"listing_county"`
	ListingPublished bool   `json:"listing_published" db:"listing_published"`
	FacilityID       string `json:"facility_id" db:"facility_id"`
	FacilityName     string `json:"facility_name" db:"facility_name"`
}
