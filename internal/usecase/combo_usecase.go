package usecase

import (
	"sort"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/taxonomy"
)

// ComboAggregator joins listing<->facility relation rows into deduplicated
// (type, facility, county) combination records.
type ComboAggregator struct {
	store  *taxonomy.Store
	logger *zap.Logger
}

func NewComboAggregator(store *taxonomy.Store, logger *zap.Logger) *ComboAggregator {
	return &ComboAggregator{
		store:  store,
		logger: logger,
	}
}

// Aggregate groups rows by (type slug, facility slug, county slug). Rows
// with an unrecognized type, an unmatched county or a facility missing from
// the slug table are skipped; the facility table must be precomputed from
// the complete catalog so slugs stay referentially stable. With
// publishedOnly set, unpublished listings are skipped as well. The first
// occurrence of a key seeds the labels. Output order is deterministic.
func (a *ComboAggregator) Aggregate(rows []domain.RelationRow, facilities []domain.SeoFacility, publishedOnly bool) []domain.ComboRecord {
	facilitiesByID := make(map[string]domain.SeoFacility, len(facilities))
	for _, f := range facilities {
		facilitiesByID[f.ID] = f
	}

	groups := make(map[domain.ComboKey]*domain.ComboRecord)
	skipped := 0
	for _, row := range rows {
		if publishedOnly && !row.ListingPublished {
			continue
		}

		listingType, ok := a.store.TypeByValue(row.ListingType)
		if !ok {
			skipped++
			continue
		}
		county, ok := a.store.FindCountyByName(row.ListingCounty)
		if !ok {
			skipped++
			continue
		}
		facility, ok := facilitiesByID[row.FacilityID]
		if !ok {
			skipped++
			continue
		}

		key := domain.ComboKey{
			TypeSlug:     listingType.Slug,
			FacilitySlug: facility.Slug,
			CountySlug:   county.Slug,
		}
		group, exists := groups[key]
		if !exists {
			group = &domain.ComboRecord{
				Key:          key,
				TypeLabel:    listingType.Label,
				FacilityName: facility.Name,
				CountyName:   county.Name,
				ListingIDs:   make(map[int64]struct{}),
			}
			groups[key] = group
		}
		group.ListingIDs[row.ListingID] = struct{}{}
	}

	if skipped > 0 {
		a.logger.Debug("Skipped unresolvable relation rows",
			zap.Int("skipped", skipped),
			zap.Int("total", len(rows)))
	}

	out := make([]domain.ComboRecord, 0, len(groups))
	for _, group := range groups {
		out = append(out, *group)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}
