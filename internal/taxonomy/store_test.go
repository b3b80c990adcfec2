package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/taxonomy"
)

func newStore(t *testing.T) *taxonomy.Store {
	t.Helper()
	store, err := taxonomy.NewStore()
	require.NoError(t, err)
	return store
}

func TestStore_FindCountyBySlug(t *testing.T) {
	store := newStore(t)

	tests := []struct {
		name     string
		slug     string
		expected string
		found    bool
	}{
		{"exact match", "brasov", "Brașov", true},
		{"exact match capital", "bucuresti", "București", true},
		{"exact compound slug", "bistrita-nasaud", "Bistrița-Năsăud", true},
		{"legacy judetul prefix", "judetul-brasov", "Brașov", true},
		{"legacy judet prefix", "judet-cluj", "Cluj", true},
		{"legacy county-of prefix", "county-of-cluj", "Cluj", true},
		{"legacy county suffix", "brasov-county", "Brașov", true},
		{"legacy judet suffix", "sibiu-judet", "Sibiu", true},
		{"distance-1 typo, missing letter", "braso", "Brașov", true},
		{"distance-1 typo, extra letter", "sibiiu", "Sibiu", true},
		{"uppercase input", "BRASOV", "Brașov", true},
		{"ambiguous distance-1 rejected", "dorj", "", false},
		{"distance-2 rejected", "brasovul", "", false},
		{"unknown", "atlantis", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			county, ok := store.FindCountyBySlug(tt.slug)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, county.Name)
			}
		})
	}
}

func TestStore_FindCountyByName(t *testing.T) {
	store := newStore(t)

	county, ok := store.FindCountyByName("Brașov")
	require.True(t, ok)
	assert.Equal(t, "Brașov", county.Name)
	assert.Equal(t, "brasov", county.Slug)

	county, ok = store.FindCountyByName("brasov")
	require.True(t, ok)
	assert.Equal(t, "Brașov", county.Name)

	_, ok = store.FindCountyByName("Nowhere")
	assert.False(t, ok)
}

func TestStore_FindRegionBySlug(t *testing.T) {
	store := newStore(t)

	region, ok := store.FindRegionBySlug("bucovina")
	require.True(t, ok)
	assert.Equal(t, "Bucovina", region.Name)
	assert.Equal(t, domain.RegionTouristic, region.Kind)

	region, ok = store.FindRegionBySlug("cluj-napoca")
	require.True(t, ok)
	assert.Equal(t, domain.RegionMetro, region.Kind)

	// Regions resolve exactly, never fuzzily.
	_, ok = store.FindRegionBySlug("bucovin")
	assert.False(t, ok)
}

func TestStore_MatchRegion(t *testing.T) {
	store := newStore(t)

	t.Run("metro core city wins over touristic county", func(t *testing.T) {
		// Brașov city is a metro core city; Brașov county also belongs to
		// Transilvania.
		region, ok := store.MatchRegion("brasov", "brasov")
		require.True(t, ok)
		assert.Equal(t, domain.RegionMetro, region.Kind)
		assert.Equal(t, "Brașov", region.Name)
	})

	t.Run("highest priority touristic region wins", func(t *testing.T) {
		// Prahova belongs to both Muntenia (10) and Valea Prahovei (50).
		region, ok := store.MatchRegion("sinaia", "prahova")
		require.True(t, ok)
		assert.Equal(t, "Valea Prahovei", region.Name)

		// Constanța belongs to both Dobrogea (20) and Litoral (50).
		region, ok = store.MatchRegion("mamaia", "constanta")
		require.True(t, ok)
		assert.Equal(t, "Litoral", region.Name)
	})

	t.Run("single touristic membership", func(t *testing.T) {
		region, ok := store.MatchRegion("craiova", "dolj")
		require.True(t, ok)
		assert.Equal(t, "Oltenia", region.Name)
	})

	t.Run("no region", func(t *testing.T) {
		_, ok := store.MatchRegion("nowhere", "")
		assert.False(t, ok)
	})
}

func TestStore_InRegion(t *testing.T) {
	store := newStore(t)

	metro, ok := store.FindRegionBySlug("brasov")
	require.True(t, ok)
	require.Equal(t, domain.RegionMetro, metro.Kind)

	// Metro membership is by core city, not county.
	assert.True(t, store.InRegion(metro, "ghimbav", "brasov"))
	assert.False(t, store.InRegion(metro, "fagaras", "brasov"))

	touristic, ok := store.FindRegionBySlug("transilvania")
	require.True(t, ok)
	assert.True(t, store.InRegion(touristic, "fagaras", "brasov"))
	assert.False(t, store.InRegion(touristic, "craiova", "dolj"))
}

func TestBuildSeoFacilities(t *testing.T) {
	t.Run("deterministic regardless of input order", func(t *testing.T) {
		a := taxonomy.BuildSeoFacilities([]domain.FacilityRecord{
			{ID: "f2", Name: "Saună"},
			{ID: "f1", Name: "Piscină"},
		})
		b := taxonomy.BuildSeoFacilities([]domain.FacilityRecord{
			{ID: "f1", Name: "Piscină"},
			{ID: "f2", Name: "Saună"},
		})
		assert.Equal(t, a, b)
		require.Len(t, a, 2)
		assert.Equal(t, "piscina", a[0].Slug)
		assert.Equal(t, "sauna", a[1].Slug)
	})

	t.Run("name collision gets id fragment suffix", func(t *testing.T) {
		out := taxonomy.BuildSeoFacilities([]domain.FacilityRecord{
			{ID: "b2-xyz", Name: "Sauna"},
			{ID: "a1-abc", Name: "Sauna"},
		})
		require.Len(t, out, 2)
		// Sorted by name then ID, the first keeps the plain slug.
		assert.Equal(t, "a1-abc", out[0].ID)
		assert.Equal(t, "sauna", out[0].Slug)
		assert.Equal(t, "b2-xyz", out[1].ID)
		assert.Equal(t, "sauna-b2xyz", out[1].Slug)
	})

	t.Run("unsluggable name falls back", func(t *testing.T) {
		out := taxonomy.BuildSeoFacilities([]domain.FacilityRecord{
			{ID: "f1", Name: "--"},
		})
		require.Len(t, out, 1)
		assert.Equal(t, "facility", out[0].Slug)
	})
}
