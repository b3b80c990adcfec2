package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	pkgerrors "github.com/seo-microservice/internal/pkg/errors"
	"github.com/seo-microservice/internal/routes"
	"github.com/seo-microservice/internal/usecase"
)

// newResolveFixture serves a fixed registry from the cache so resolution
// never triggers a build.
func newResolveFixture(t *testing.T) (*usecase.ResolveUseCase, *MockListingRepository) {
	t.Helper()
	store := newTestStore(t)
	f := newRegistryFixture(t, 3)

	cached := []domain.PageRecord{
		{URL: "/", Kind: domain.PageHome},
		{URL: "/cazari", Kind: domain.PageTypeIndex},
		{URL: "/judet/brasov", Kind: domain.PageCounty},
		{URL: "/localitate/brasov", Kind: domain.PageLocality},
		{URL: "/localitate/bucuresti", Kind: domain.PageLocality},
		{URL: "/regiune/transilvania", Kind: domain.PageRegion},
		{URL: "/cazari/cabana/county-brasov", Kind: domain.PageTypeCounty},
		{URL: "/cazari/cabana/county-brasov/facility-sauna", Kind: domain.PageTypeFacilityCounty},
		{URL: "/cazare/cabana-unu", Kind: domain.PageListing, ID: "listing:1"},
	}
	f.cacheRepo.On("GetRegistry", context.Background()).Return(cached, nil)

	uc := usecase.NewResolveUseCase(f.uc, f.listingRepo, store, routes.NewCodec(store), zap.NewNop())
	return uc, f.listingRepo
}

func TestResolveUseCase_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("canonical path renders", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/cazari/cabana/county-brasov")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		require.NotNil(t, resp.Page)
		assert.Equal(t, "/cazari/cabana/county-brasov", resp.Page.URL)
	})

	t.Run("legacy bare county segment redirects", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/cazari/cabana/brasov")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/cazari/cabana/county-brasov", resp.Location)
		assert.Nil(t, resp.Page)
	})

	t.Run("locality slugs shadowing county slugs render in place", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		for _, path := range []string{"/localitate/brasov", "/localitate/bucuresti"} {
			resp, err := uc.Resolve(ctx, path)
			require.NoError(t, err, path)
			assert.Equal(t, http.StatusOK, resp.Status, path)
			require.NotNil(t, resp.Page, path)
			assert.Equal(t, path, resp.Page.URL)
		}
	})

	t.Run("metro slug under the region root redirects to the locality", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/regiune/brasov")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/localitate/brasov", resp.Location)
	})

	t.Run("touristic slug under the locality root redirects to the region", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/localitate/transilvania")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/regiune/transilvania", resp.Location)
	})

	t.Run("county slug under the region root falls back to the county", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/regiune/dolj")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/judet/dolj", resp.Location)
	})

	t.Run("county typo redirects to the canonical slug", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/judet/braso")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/judet/brasov", resp.Location)
	})

	t.Run("legacy composite order redirects to the canonical combo", func(t *testing.T) {
		uc, listingRepo := newResolveFixture(t)
		listingRepo.On("GetFacilities", ctx).Return([]domain.FacilityRecord{
			{ID: "f1", Name: "Sauna"},
		}, nil)

		resp, err := uc.Resolve(ctx, "/cazari/cabana/sauna/brasov")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, "/cazari/cabana/county-brasov/facility-sauna", resp.Location)
	})

	t.Run("trailing slash cleans to the canonical path", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/cazari/")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "/cazari", resp.Page.URL)
	})

	t.Run("query string is ignored", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/judet/brasov?utm_source=mail")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
	})

	t.Run("empty path is home", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "/", resp.Page.URL)
	})

	t.Run("preview renders the listing page", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		resp, err := uc.Resolve(ctx, "/previzualizare/cazare/cabana-unu")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		require.NotNil(t, resp.Page)
		assert.Equal(t, "listing:1", resp.Page.ID)
	})

	t.Run("unresolvable segment", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		_, err := uc.Resolve(ctx, "/foo")
		assert.ErrorIs(t, err, pkgerrors.ErrSegmentNotFound)
	})

	t.Run("canonical shape without a registry page", func(t *testing.T) {
		uc, _ := newResolveFixture(t)
		_, err := uc.Resolve(ctx, "/cazare/necunoscuta")
		assert.ErrorIs(t, err, pkgerrors.ErrPageNotFound)
	})

	t.Run("facility fetch failure fails composite resolution", func(t *testing.T) {
		uc, listingRepo := newResolveFixture(t)
		listingRepo.On("GetFacilities", ctx).Return(nil, errors.New("db down"))

		_, err := uc.Resolve(ctx, "/cazari/cabana/sauna/brasov")
		assert.ErrorIs(t, err, pkgerrors.ErrSegmentNotFound)
	})
}
