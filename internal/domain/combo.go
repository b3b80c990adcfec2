package domain

// ComboKey identifies a deduplicated (property type, facility, county)
// triple. Used both as a map key and for deterministic output ordering.
type ComboKey struct {
	TypeSlug     string `json:"type_slug"`
	FacilitySlug string `json:"facility_slug"`
	CountySlug   string `json:"county_slug"`
}

func (k ComboKey) String() string {
	return k.TypeSlug + "|" + k.FacilitySlug + "|" + k.CountySlug
}

// ComboRecord is the aggregate for one ComboKey. ListingIDs is always a
// deduplicated set, never a multiset.
type ComboRecord struct {
	Key          ComboKey           `json:"key"`
	TypeLabel    string             `json:"type_label"`
	FacilityName string             `json:"facility_name"`
	CountyName   string             `json:"county_name"`
	ListingIDs   map[int64]struct{} `json:"-"`
}
