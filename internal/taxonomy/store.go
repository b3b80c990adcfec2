package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seo-microservice/internal/domain"
)

// maxSlugEditDistance bounds the typo correction of FindCountyBySlug.
const maxSlugEditDistance = 1

// segmentNoisePrefixes are legacy wrappers stripped before the fuzzy pass.
var segmentNoisePrefixes = []string{"judetul-", "judet-", "county-of-", "county-"}

// segmentNoiseSuffixes mirrors segmentNoisePrefixes for trailing wrappers.
var segmentNoiseSuffixes = []string{"-county", "-judet"}

// Store is the immutable taxonomy catalog, constructed once at process
// start and passed by reference to every component.
type Store struct {
	counties       []domain.CountyDefinition
	countiesBySlug map[string]domain.CountyDefinition
	countiesByKey  map[string]domain.CountyDefinition

	// regions keeps registration order; priority ties resolve to the first
	// registered region.
	regions       []domain.RegionDefinition
	regionsBySlug map[string]domain.RegionDefinition
	metroByCity   map[string]domain.RegionDefinition

	// countyKeysByRegion maps region slug to the normalized-name set of its
	// counties, resolved against the county catalog at construction.
	countyKeysByRegion map[string]map[string]struct{}
	cityKeysByRegion   map[string]map[string]struct{}

	types       []domain.ListingTypeOption
	typesByKey  map[string]domain.ListingTypeOption
	typesBySlug map[string]domain.ListingTypeOption
}

// NewStore builds the Store from the static catalogs. It fails if a region
// references a county that cannot be resolved, so a bad catalog is caught at
// startup rather than producing half-built registries.
func NewStore() (*Store, error) {
	s := &Store{
		countiesBySlug:     make(map[string]domain.CountyDefinition),
		countiesByKey:      make(map[string]domain.CountyDefinition),
		regionsBySlug:      make(map[string]domain.RegionDefinition),
		metroByCity:        make(map[string]domain.RegionDefinition),
		countyKeysByRegion: make(map[string]map[string]struct{}),
		cityKeysByRegion:   make(map[string]map[string]struct{}),
		typesByKey:         make(map[string]domain.ListingTypeOption),
		typesBySlug:        make(map[string]domain.ListingTypeOption),
	}

	for _, name := range countyNames {
		county := domain.CountyDefinition{Name: name, Slug: Slugify(name)}
		s.counties = append(s.counties, county)
		s.countiesBySlug[county.Slug] = county
		s.countiesByKey[Normalize(name)] = county
	}

	for _, def := range regionCatalog {
		region := def
		region.Slug = Slugify(region.Name)
		if _, dup := s.regionsBySlug[region.Slug]; dup {
			return nil, fmt.Errorf("duplicate region slug %q", region.Slug)
		}

		countyKeys := make(map[string]struct{}, len(region.Counties))
		for _, countyName := range region.Counties {
			county, ok := s.resolveCountyName(countyName)
			if !ok {
				return nil, fmt.Errorf("region %q references unknown county %q", region.Name, countyName)
			}
			countyKeys[Normalize(county.Name)] = struct{}{}
		}
		s.countyKeysByRegion[region.Slug] = countyKeys

		if region.Kind == domain.RegionMetro {
			cityKeys := make(map[string]struct{}, len(region.CoreCities))
			for _, city := range region.CoreCities {
				key := Normalize(city)
				cityKeys[key] = struct{}{}
				if _, taken := s.metroByCity[key]; !taken {
					s.metroByCity[key] = region
				}
			}
			s.cityKeysByRegion[region.Slug] = cityKeys
		}

		s.regions = append(s.regions, region)
		s.regionsBySlug[region.Slug] = region
	}

	for _, t := range listingTypeCatalog {
		s.types = append(s.types, t)
		s.typesByKey[t.Value] = t
		s.typesBySlug[t.Slug] = t
	}

	return s, nil
}

// resolveCountyName matches raw county text, exact normalized first, then a
// distance-1 fuzzy pass over normalized names.
func (s *Store) resolveCountyName(raw string) (domain.CountyDefinition, bool) {
	key := Normalize(raw)
	if county, ok := s.countiesByKey[key]; ok {
		return county, true
	}
	return s.fuzzyCounty(strings.ReplaceAll(key, " ", "-"), s.countiesBySlug)
}

// FindCountyByName resolves raw county text from listing rows.
func (s *Store) FindCountyByName(raw string) (domain.CountyDefinition, bool) {
	return s.resolveCountyName(raw)
}

// FindCountyBySlug resolves a URL slug to a county. Exact match first, then
// a retry with legacy prefix/suffix noise stripped, then a Levenshtein pass
// that accepts only an unambiguous distance-1 match.
func (s *Store) FindCountyBySlug(slug string) (domain.CountyDefinition, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if county, ok := s.countiesBySlug[slug]; ok {
		return county, true
	}

	if stripped := stripSegmentNoise(slug); stripped != slug {
		if county, ok := s.countiesBySlug[stripped]; ok {
			return county, true
		}
		slug = stripped
	}

	return s.fuzzyCounty(slug, s.countiesBySlug)
}

// fuzzyCounty accepts a candidate only when the minimum edit distance is
// within maxSlugEditDistance and exactly one county attains it. Ambiguous
// ties are rejected rather than silently resolved.
func (s *Store) fuzzyCounty(slug string, bySlug map[string]domain.CountyDefinition) (domain.CountyDefinition, bool) {
	if slug == "" {
		return domain.CountyDefinition{}, false
	}

	best := maxSlugEditDistance + 1
	matches := 0
	var found domain.CountyDefinition
	for candidate, county := range bySlug {
		d := levenshtein(slug, candidate)
		switch {
		case d < best:
			best = d
			matches = 1
			found = county
		case d == best:
			matches++
		}
	}

	if best > maxSlugEditDistance || matches != 1 {
		return domain.CountyDefinition{}, false
	}
	return found, true
}

func stripSegmentNoise(slug string) string {
	for _, prefix := range segmentNoisePrefixes {
		if strings.HasPrefix(slug, prefix) && len(slug) > len(prefix) {
			slug = strings.TrimPrefix(slug, prefix)
			break
		}
	}
	for _, suffix := range segmentNoiseSuffixes {
		if strings.HasSuffix(slug, suffix) && len(slug) > len(suffix) {
			slug = strings.TrimSuffix(slug, suffix)
			break
		}
	}
	return slug
}

// FindRegionBySlug resolves a region slug of either kind. Exact match only:
// regions are few and curated, typos redirect through the county fallback.
func (s *Store) FindRegionBySlug(slug string) (domain.RegionDefinition, bool) {
	region, ok := s.regionsBySlug[strings.ToLower(strings.TrimSpace(slug))]
	return region, ok
}

// MatchRegion resolves the region for a normalized city/county pair. A metro
// core-city match wins over any touristic county match; among touristic
// candidates the highest priority wins, ties going to registration order.
func (s *Store) MatchRegion(cityKey, countyKey string) (domain.RegionDefinition, bool) {
	if region, ok := s.metroByCity[cityKey]; ok {
		return region, true
	}

	var best domain.RegionDefinition
	found := false
	for _, region := range s.regions {
		if region.Kind != domain.RegionTouristic {
			continue
		}
		if _, ok := s.countyKeysByRegion[region.Slug][countyKey]; !ok {
			continue
		}
		if !found || region.Priority > best.Priority {
			best = region
			found = true
		}
	}
	return best, found
}

// InRegion reports whether a normalized city/county pair belongs to a
// region: core-city membership for metro, county membership for touristic.
func (s *Store) InRegion(region domain.RegionDefinition, cityKey, countyKey string) bool {
	if region.Kind == domain.RegionMetro {
		_, ok := s.cityKeysByRegion[region.Slug][cityKey]
		return ok
	}
	_, ok := s.countyKeysByRegion[region.Slug][countyKey]
	return ok
}

func (s *Store) Counties() []domain.CountyDefinition {
	return s.counties
}

func (s *Store) Regions() []domain.RegionDefinition {
	return s.regions
}

func (s *Store) ListingTypes() []domain.ListingTypeOption {
	return s.types
}

func (s *Store) TypeByValue(value string) (domain.ListingTypeOption, bool) {
	t, ok := s.typesByKey[value]
	return t, ok
}

func (s *Store) TypeBySlug(slug string) (domain.ListingTypeOption, bool) {
	t, ok := s.typesBySlug[slug]
	return t, ok
}

// BuildSeoFacilities derives the deterministic facility slug table from the
// complete facility catalog. Name collisions are disambiguated by suffixing
// a short fragment of the facility ID; input order does not matter because
// the catalog is sorted by name then ID first.
func BuildSeoFacilities(facilities []domain.FacilityRecord) []domain.SeoFacility {
	sorted := make([]domain.FacilityRecord, len(facilities))
	copy(sorted, facilities)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})

	taken := make(map[string]struct{}, len(sorted))
	out := make([]domain.SeoFacility, 0, len(sorted))
	for _, f := range sorted {
		slug := Slugify(f.Name)
		if slug == "" {
			slug = "facility"
		}
		if _, dup := taken[slug]; dup {
			slug = slug + "-" + idFragment(f.ID)
		}
		// A fragment collision leaves the row out rather than emitting a
		// duplicate slug.
		if _, dup := taken[slug]; dup {
			continue
		}
		taken[slug] = struct{}{}
		out = append(out, domain.SeoFacility{ID: f.ID, Name: f.Name, Slug: slug})
	}
	return out
}

// idFragment keeps the first six alphanumeric characters of an ID.
func idFragment(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 6 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}
