package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/usecase"
)

func strPtr(s string) *string { return &s }

func TestOverrideMerger_CuratedFieldsWinOnRoutePages(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	pages := []domain.PageRecord{{
		ID:             "route:/judet/brasov",
		Source:         domain.SourceRoute,
		Slug:           "brasov",
		URL:            "/judet/brasov",
		Kind:           domain.PageCounty,
		Title:          "Cazare în Brașov",
		Status:         domain.StatusPublished,
		Indexable:      true,
		LastModifiedMs: 100,
	}}
	rows := []domain.OverrideRow{{
		ID:             7,
		Path:           strPtr("/judet/brasov"),
		Slug:           "custom-slug",
		Title:          "Custom Title",
		Status:         "unpublished",
		InMenu:         true,
		Indexable:      false,
		LastModifiedMs: 500,
	}}

	merged := merger.Merge(pages, rows)
	require.Len(t, merged, 1)
	page := merged[0]

	// Route-derived slug/title survive; curated flags win.
	assert.Equal(t, "brasov", page.Slug)
	assert.Equal(t, "Cazare în Brașov", page.Title)
	assert.Equal(t, domain.StatusUnpublished, page.Status)
	assert.True(t, page.InMenu)
	assert.False(t, page.Indexable)
	assert.True(t, page.CanToggleStatus)
	assert.True(t, page.CanToggleIndex)
	assert.Equal(t, "zone:7", page.ID)
	assert.Equal(t, int64(500), page.LastModifiedMs)
	assert.False(t, page.IsInconsistent)
}

func TestOverrideMerger_ZoneSourcedTextOverwrites(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	// First row inserts a zone-sourced page; the second, matching by URL,
	// may overwrite its text because the target is zone-sourced.
	rows := []domain.OverrideRow{
		{ID: 1, Path: strPtr("/promo-iarna"), Slug: "promo-iarna", Title: "Promo", Status: "published"},
		{ID: 2, Path: strPtr("/promo-iarna"), Slug: "promo-iarna-2024", Title: "Promo Iarna 2024", Status: "published"},
	}

	merged := merger.Merge(nil, rows)
	require.Len(t, merged, 1)
	assert.Equal(t, "promo-iarna-2024", merged[0].Slug)
	assert.Equal(t, "Promo Iarna 2024", merged[0].Title)
	assert.Equal(t, "zone:2", merged[0].ID)
}

func TestOverrideMerger_PlaceholderNeverOverwrites(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	rows := []domain.OverrideRow{
		{ID: 1, Path: strPtr("/promo"), Slug: "promo", Title: "Promo", Status: "published"},
		{ID: 2, Path: strPtr("/promo"), Slug: "-", Title: "N/A", Status: "published"},
	}

	merged := merger.Merge(nil, rows)
	require.Len(t, merged, 1)
	assert.Equal(t, "promo", merged[0].Slug)
	assert.Equal(t, "Promo", merged[0].Title)
}

func TestOverrideMerger_OrphanRowsRetained(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	t.Run("classifiable orphan is not flagged", func(t *testing.T) {
		rows := []domain.OverrideRow{{ID: 3, ZoneType: "judet", Slug: "sibiu", Status: "published"}}
		merged := merger.Merge(nil, rows)
		require.Len(t, merged, 1)
		assert.Equal(t, "/judet/sibiu", merged[0].URL)
		assert.Equal(t, domain.PageCounty, merged[0].Kind)
		assert.Equal(t, domain.SourceZone, merged[0].Source)
		assert.False(t, merged[0].IsInconsistent)
	})

	t.Run("unclassifiable orphan is flagged", func(t *testing.T) {
		rows := []domain.OverrideRow{{ID: 4, ZoneType: "misc", Slug: "promo", Status: "published"}}
		merged := merger.Merge(nil, rows)
		require.Len(t, merged, 1)
		assert.Equal(t, "/promo", merged[0].URL)
		assert.Equal(t, domain.PageUnclassifiedZone, merged[0].Kind)
		assert.True(t, merged[0].IsInconsistent)
	})

	t.Run("row without any URL gets a synthetic key", func(t *testing.T) {
		rows := []domain.OverrideRow{{ID: 5, ZoneType: "misc", Slug: "", Status: "published"}}
		merged := merger.Merge(nil, rows)
		require.Len(t, merged, 1)
		assert.Equal(t, "/zone/5", merged[0].URL)
		assert.True(t, merged[0].IsInconsistent)
	})
}

func TestOverrideMerger_MetroSlugClassifiedAsLocality(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	// "alba-iulia" names a metro region, so even a row typed "regiune" is a
	// locality page under /localitate.
	rows := []domain.OverrideRow{{ID: 6, ZoneType: "regiune", Slug: "alba-iulia", Status: "published"}}
	merged := merger.Merge(nil, rows)
	require.Len(t, merged, 1)
	assert.Equal(t, domain.PageLocality, merged[0].Kind)
	assert.Equal(t, "/localitate/alba-iulia", merged[0].URL)
}

func TestOverrideMerger_StatusParsing(t *testing.T) {
	store := newTestStore(t)
	merger := usecase.NewOverrideMerger(store, zap.NewNop())

	tests := []struct {
		raw      string
		expected domain.PageStatus
	}{
		{"published", domain.StatusPublished},
		{"Publicat", domain.StatusPublished},
		{"1", domain.StatusPublished},
		{"draft", domain.StatusDraft},
		{"ciorna", domain.StatusDraft},
		{"disabled", domain.StatusUnpublished},
		{"", domain.StatusUnpublished},
	}

	for _, tt := range tests {
		rows := []domain.OverrideRow{{ID: 9, Path: strPtr("/x"), Slug: "x", Status: tt.raw}}
		merged := merger.Merge(nil, rows)
		require.Len(t, merged, 1)
		assert.Equal(t, tt.expected, merged[0].Status, "raw status %q", tt.raw)
	}
}
