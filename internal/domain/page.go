package domain

import "time"

type PageKind string

const (
	PageHome               PageKind = "home"
	PageTypeIndex          PageKind = "type-index"
	PageAttractionIndex    PageKind = "attraction-index"
	PageType               PageKind = "type"
	PageCounty             PageKind = "county"
	PageTypeCounty         PageKind = "type-county"
	PageRegion             PageKind = "region"
	PageLocality           PageKind = "locality"
	PageTypeRegion         PageKind = "type-region"
	PageTypeLocality       PageKind = "type-locality"
	PageTypeFacilityCounty PageKind = "type-facility-county"
	PageListing            PageKind = "listing"
	PageAttraction         PageKind = "attraction"
	PageStatic             PageKind = "static"
	PageUnclassifiedZone   PageKind = "unclassified-zone"
)

type PageStatus string

const (
	StatusPublished   PageStatus = "published"
	StatusUnpublished PageStatus = "unpublished"
	StatusDraft       PageStatus = "draft"
)

// PageSource says where a registry entry came from. Route-synthesized
// entries are rebuilt on every pass; zone entries originate from the manual
// override table.
type PageSource string

const (
	SourceRoute PageSource = "route"
	SourceZone  PageSource = "zone"
)

// TrafficWindow is one rolling analytics window. Windows are cumulative:
// an event inside the 1h window also counts in every wider one.
type TrafficWindow struct {
	Key  string
	Span time.Duration
}

// TrafficWindows are the fixed rolling windows, narrowest first.
var TrafficWindows = []TrafficWindow{
	{Key: "1h", Span: time.Hour},
	{Key: "6h", Span: 6 * time.Hour},
	{Key: "24h", Span: 24 * time.Hour},
	{Key: "7d", Span: 7 * 24 * time.Hour},
	{Key: "30d", Span: 30 * 24 * time.Hour},
}

// WindowStats carries totals for one page and one window.
type WindowStats struct {
	Views   int64 `json:"views"`
	Uniques int64 `json:"uniques"`
}

// PageRecord is one addressable search page of the marketplace, uniquely
// keyed by canonical URL.
type PageRecord struct {
	ID                  string                 `json:"id"`
	Source              PageSource             `json:"source"`
	Slug                string                 `json:"slug"`
	URL                 string                 `json:"url"`
	PreviewURL          string                 `json:"preview_url,omitempty"`
	Kind                PageKind               `json:"kind"`
	Title               string                 `json:"title"`
	Status              PageStatus             `json:"status"`
	InMenu              bool                   `json:"in_menu"`
	Indexable           bool                   `json:"indexable"`
	TotalListings       int                    `json:"total_listings"`
	PublishedListings   int                    `json:"published_listings"`
	UnpublishedListings int                    `json:"unpublished_listings"`
	LastModifiedMs      int64                  `json:"last_modified_ms"`
	CanToggleStatus     bool                   `json:"can_toggle_status"`
	CanToggleIndex      bool                   `json:"can_toggle_index"`
	TrafficByWindow     map[string]WindowStats `json:"traffic_by_window,omitempty"`
	LastSeenMs          int64                  `json:"last_seen_ms,omitempty"`
	IsInconsistent      bool                   `json:"is_inconsistent,omitempty"`
}
