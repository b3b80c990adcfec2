package routes

import (
	"strings"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/taxonomy"
)

// Canonical segment prefixes. The prefix marks the segment kind so a
// county and a facility can never be confused in composite paths.
const (
	PrefixCounty   = "county-"
	PrefixLocality = "locality-"
	PrefixRegion   = "region-"
	PrefixFacility = "facility-"
)

type SegmentKind string

const (
	SegmentCounty   SegmentKind = "county"
	SegmentLocality SegmentKind = "locality"
	SegmentRegion   SegmentKind = "region"
	SegmentFacility SegmentKind = "facility"
)

// DecodedLocation is the result of resolving a location path segment.
// IsCanonical is true only when the raw input equals the freshly built
// canonical segment; callers redirect permanently otherwise.
type DecodedLocation struct {
	Kind             SegmentKind
	County           *domain.CountyDefinition
	Region           *domain.RegionDefinition
	CanonicalSegment string
	IsCanonical      bool
}

// DecodedFacility mirrors DecodedLocation for facility segments.
type DecodedFacility struct {
	Facility         domain.SeoFacility
	CanonicalSegment string
	IsCanonical      bool
}

// Codec encodes and decodes canonical path segments against the taxonomy.
type Codec struct {
	store *taxonomy.Store
}

func NewCodec(store *taxonomy.Store) *Codec {
	return &Codec{store: store}
}

func EncodeCountySegment(county domain.CountyDefinition) string {
	return PrefixCounty + county.Slug
}

func EncodeRegionSegment(region domain.RegionDefinition) string {
	if region.Kind == domain.RegionMetro {
		return PrefixLocality + region.Slug
	}
	return PrefixRegion + region.Slug
}

func EncodeFacilitySegment(facility domain.SeoFacility) string {
	return PrefixFacility + facility.Slug
}

// DecodeLocationSegment classifies raw by prefix first and resolves the
// remainder via the taxonomy. Un-prefixed segments go through legacy
// resolution: whole segment as a county slug, then as a region slug; either
// way IsCanonical is false so the caller issues a permanent redirect.
func (c *Codec) DecodeLocationSegment(raw string) (*DecodedLocation, bool) {
	seg := strings.ToLower(strings.TrimSpace(raw))

	switch {
	case strings.HasPrefix(seg, PrefixCounty):
		county, ok := c.store.FindCountyBySlug(strings.TrimPrefix(seg, PrefixCounty))
		if !ok {
			return nil, false
		}
		return c.locationForCounty(county, raw), true

	case strings.HasPrefix(seg, PrefixLocality):
		region, ok := c.store.FindRegionBySlug(strings.TrimPrefix(seg, PrefixLocality))
		if !ok {
			return nil, false
		}
		return c.locationForRegion(region, raw), true

	case strings.HasPrefix(seg, PrefixRegion):
		region, ok := c.store.FindRegionBySlug(strings.TrimPrefix(seg, PrefixRegion))
		if !ok {
			return nil, false
		}
		return c.locationForRegion(region, raw), true
	}

	// Legacy segment without a kind prefix.
	if county, ok := c.store.FindCountyBySlug(seg); ok {
		return c.locationForCounty(county, raw), true
	}
	if region, ok := c.store.FindRegionBySlug(seg); ok {
		return c.locationForRegion(region, raw), true
	}
	return nil, false
}

func (c *Codec) locationForCounty(county domain.CountyDefinition, raw string) *DecodedLocation {
	canonical := EncodeCountySegment(county)
	return &DecodedLocation{
		Kind:             SegmentCounty,
		County:           &county,
		CanonicalSegment: canonical,
		IsCanonical:      raw == canonical,
	}
}

func (c *Codec) locationForRegion(region domain.RegionDefinition, raw string) *DecodedLocation {
	kind := SegmentRegion
	if region.Kind == domain.RegionMetro {
		kind = SegmentLocality
	}
	canonical := EncodeRegionSegment(region)
	return &DecodedLocation{
		Kind:             kind,
		Region:           &region,
		CanonicalSegment: canonical,
		IsCanonical:      raw == canonical,
	}
}

// DecodeFacilitySegment resolves a facility segment against the per-build
// facility slug table. A bare facility slug resolves as legacy.
func (c *Codec) DecodeFacilitySegment(raw string, facilitiesBySlug map[string]domain.SeoFacility) (*DecodedFacility, bool) {
	seg := strings.ToLower(strings.TrimSpace(raw))
	seg = strings.TrimPrefix(seg, PrefixFacility)

	facility, ok := facilitiesBySlug[seg]
	if !ok {
		return nil, false
	}
	canonical := EncodeFacilitySegment(facility)
	return &DecodedFacility{
		Facility:         facility,
		CanonicalSegment: canonical,
		IsCanonical:      raw == canonical,
	}, true
}

// DecodedComposite is a resolved type/location/facility path.
type DecodedComposite struct {
	Type        domain.ListingTypeOption
	County      domain.CountyDefinition
	Facility    domain.SeoFacility
	Canonical   string
	IsCanonical bool
}

// DecodeComposite resolves the two tail segments of a
// /cazari/<type>/<a>/<b> path. The new order (location, then facility) is
// tried first; the legacy order (facility in the location slot, county in
// the facility slot) is the fallback. Combo pages only exist for county
// locations.
func (c *Codec) DecodeComposite(listingType domain.ListingTypeOption, segA, segB string, facilitiesBySlug map[string]domain.SeoFacility) (*DecodedComposite, bool) {
	if loc, ok := c.DecodeLocationSegment(segA); ok && loc.Kind == SegmentCounty {
		if fac, ok := c.DecodeFacilitySegment(segB, facilitiesBySlug); ok {
			canonical := TypeFacilityCountyPath(listingType.Slug, loc.County.Slug, fac.Facility.Slug)
			return &DecodedComposite{
				Type:        listingType,
				County:      *loc.County,
				Facility:    fac.Facility,
				Canonical:   canonical,
				IsCanonical: loc.IsCanonical && fac.IsCanonical,
			}, true
		}
	}

	// Legacy order.
	fac, ok := c.DecodeFacilitySegment(segA, facilitiesBySlug)
	if !ok {
		return nil, false
	}
	countySlug := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(segB)), PrefixCounty)
	county, ok := c.store.FindCountyBySlug(countySlug)
	if !ok {
		return nil, false
	}
	return &DecodedComposite{
		Type:        listingType,
		County:      county,
		Facility:    fac.Facility,
		Canonical:   TypeFacilityCountyPath(listingType.Slug, county.Slug, fac.Facility.Slug),
		IsCanonical: false,
	}, true
}
