package domain

// CountyDefinition is one canonical administrative county. Slug is the
// deterministic accent-stripped lowercase transliteration of Name.
type CountyDefinition struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type RegionKind string

const (
	// RegionTouristic claims whole counties and may overlap other touristic
	// regions; Priority breaks ties.
	RegionTouristic RegionKind = "touristic"
	// RegionMetro restricts membership to specific core cities within its
	// counties (a strict subset of a county).
	RegionMetro RegionKind = "metro"
)

type RegionDefinition struct {
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Kind       RegionKind `json:"kind"`
	Counties   []string   `json:"counties"`
	CoreCities []string   `json:"core_cities,omitempty"`
	Priority   int        `json:"priority,omitempty"`
}

// ListingTypeOption is one entry of the fixed property-type enumeration.
type ListingTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// FacilityRecord is a facility row as sourced from the external catalog.
type FacilityRecord struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// SeoFacility is a FacilityRecord with a deterministic slug. When two
// facility names collapse to the same slug, later ones get a short fragment
// of the facility ID suffixed to keep slugs unique.
type SeoFacility struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
