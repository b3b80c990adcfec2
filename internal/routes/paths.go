package routes

import "github.com/seo-microservice/internal/domain"

// Canonical path roots. These shapes are part of the public contract and
// must be produced bit-exact.
const (
	HomePath            = "/"
	TypeIndexPath       = "/cazari"
	AttractionIndexPath = "/atractii"
	CountyRoot          = "/judet/"
	RegionRoot          = "/regiune/"
	LocalityRoot        = "/localitate/"
	ListingRoot         = "/cazare/"
	ListingPreviewRoot  = "/previzualizare/cazare/"
	AttractionRoot      = "/atractie/"
)

// StaticPage is one of the fixed non-listing pages.
type StaticPage struct {
	Path      string
	Title     string
	Indexable bool
}

// StaticPages are the five fixed static paths. None are shown in
// navigation; the legal pages are kept out of the index.
var StaticPages = []StaticPage{
	{Path: "/despre-noi", Title: "Despre noi", Indexable: true},
	{Path: "/servicii", Title: "Servicii", Indexable: true},
	{Path: "/contact", Title: "Contact", Indexable: true},
	{Path: "/termeni-si-conditii", Title: "Termeni și condiții", Indexable: false},
	{Path: "/politica-de-confidentialitate", Title: "Politica de confidențialitate", Indexable: false},
}

func TypePath(typeSlug string) string {
	return TypeIndexPath + "/" + typeSlug
}

func CountyPath(countySlug string) string {
	return CountyRoot + countySlug
}

// RegionPath routes metro regions under /localitate and touristic ones
// under /regiune.
func RegionPath(region domain.RegionDefinition) string {
	if region.Kind == domain.RegionMetro {
		return LocalityRoot + region.Slug
	}
	return RegionRoot + region.Slug
}

// TypeLocationPath joins a type page with an encoded location segment.
func TypeLocationPath(typeSlug, locationSegment string) string {
	return TypePath(typeSlug) + "/" + locationSegment
}

// TypeFacilityCountyPath is the long-tail combo page path.
func TypeFacilityCountyPath(typeSlug, countySlug, facilitySlug string) string {
	return TypePath(typeSlug) + "/" + PrefixCounty + countySlug + "/" + PrefixFacility + facilitySlug
}

func ListingPath(listingSlug string) string {
	return ListingRoot + listingSlug
}

// ListingPreviewPath is the operator-only URL of an unpublished listing. It
// must differ from the canonical listing path.
func ListingPreviewPath(listingSlug string) string {
	return ListingPreviewRoot + listingSlug
}

func AttractionPath(attractionSlug string) string {
	return AttractionRoot + attractionSlug
}
