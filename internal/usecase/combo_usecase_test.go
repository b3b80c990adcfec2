package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/usecase"
)

func testFacilities() []domain.SeoFacility {
	return []domain.SeoFacility{
		{ID: "f1", Name: "Saună", Slug: "sauna"},
		{ID: "f2", Name: "Piscină", Slug: "piscina"},
	}
}

func TestComboAggregator_Aggregate(t *testing.T) {
	store := newTestStore(t)
	aggregator := usecase.NewComboAggregator(store, zap.NewNop())

	rows := []domain.RelationRow{
		{ListingID: 1, ListingType: "cabana", ListingCounty: "Brașov", ListingPublished: true, FacilityID: "f1"},
		// Same combo through an unaccented county spelling.
		{ListingID: 2, ListingType: "cabana", ListingCounty: "Brasov", ListingPublished: true, FacilityID: "f1"},
		{ListingID: 2, ListingType: "cabana", ListingCounty: "Brasov", ListingPublished: true, FacilityID: "f2"},
		// Unpublished, dropped when publishedOnly is set.
		{ListingID: 3, ListingType: "cabana", ListingCounty: "Brașov", ListingPublished: false, FacilityID: "f1"},
		// Unresolvable rows of every kind.
		{ListingID: 4, ListingType: "igloo", ListingCounty: "Brașov", ListingPublished: true, FacilityID: "f1"},
		{ListingID: 5, ListingType: "cabana", ListingCounty: "Atlantis", ListingPublished: true, FacilityID: "f1"},
		{ListingID: 6, ListingType: "cabana", ListingCounty: "Brașov", ListingPublished: true, FacilityID: "f9"},
	}

	combos := aggregator.Aggregate(rows, testFacilities(), true)
	require.Len(t, combos, 2)

	// Deterministic order by key string.
	assert.Equal(t, domain.ComboKey{TypeSlug: "cabana", FacilitySlug: "piscina", CountySlug: "brasov"}, combos[0].Key)
	assert.Equal(t, domain.ComboKey{TypeSlug: "cabana", FacilitySlug: "sauna", CountySlug: "brasov"}, combos[1].Key)

	assert.Equal(t, map[int64]struct{}{2: {}}, combos[0].ListingIDs)
	assert.Equal(t, map[int64]struct{}{1: {}, 2: {}}, combos[1].ListingIDs)

	assert.Equal(t, "Cabane", combos[1].TypeLabel)
	assert.Equal(t, "Saună", combos[1].FacilityName)
	assert.Equal(t, "Brașov", combos[1].CountyName)
}

func TestComboAggregator_IncludesUnpublishedWithoutFilter(t *testing.T) {
	store := newTestStore(t)
	aggregator := usecase.NewComboAggregator(store, zap.NewNop())

	rows := []domain.RelationRow{
		{ListingID: 3, ListingType: "cabana", ListingCounty: "Brașov", ListingPublished: false, FacilityID: "f1"},
	}

	combos := aggregator.Aggregate(rows, testFacilities(), false)
	require.Len(t, combos, 1)
	assert.Equal(t, map[int64]struct{}{3: {}}, combos[0].ListingIDs)
}

func TestComboAggregator_Empty(t *testing.T) {
	store := newTestStore(t)
	aggregator := usecase.NewComboAggregator(store, zap.NewNop())

	combos := aggregator.Aggregate(nil, testFacilities(), true)
	assert.Empty(t, combos)
}
