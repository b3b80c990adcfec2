package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/taxonomy"
)

// MockListingRepository is a mock of ListingRepository
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetListings(ctx context.Context) ([]domain.ListingMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingMeta), args.Error(1)
}

func (m *MockListingRepository) GetAttractions(ctx context.Context) ([]domain.AttractionMeta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttractionMeta), args.Error(1)
}

func (m *MockListingRepository) GetFacilities(ctx context.Context) ([]domain.FacilityRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FacilityRecord), args.Error(1)
}

func (m *MockListingRepository) CountRelations(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockListingRepository) GetRelationsBatch(ctx context.Context, limit, offset int) ([]domain.RelationRow, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelationRow), args.Error(1)
}

func (m *MockListingRepository) TogglePublish(ctx context.Context, id int64) (*domain.ListingMeta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ListingMeta), args.Error(1)
}

// MockOverrideRepository is a mock of OverrideRepository
type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) GetOverrides(ctx context.Context) ([]domain.OverrideRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OverrideRow), args.Error(1)
}

func (m *MockOverrideRepository) ToggleStatus(ctx context.Context, id int64) (*domain.OverrideRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverrideRow), args.Error(1)
}

func (m *MockOverrideRepository) ToggleIndexable(ctx context.Context, id int64) (*domain.OverrideRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverrideRow), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetRegistry(ctx context.Context) ([]domain.PageRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageRecord), args.Error(1)
}

func (m *MockCacheRepository) SetRegistry(ctx context.Context, pages []domain.PageRecord, ttl time.Duration) error {
	args := m.Called(ctx, pages, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateRegistry(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockPageviewRepository is a mock of PageviewRepository
type MockPageviewRepository struct {
	mock.Mock
}

func (m *MockPageviewRepository) CountEventsSince(ctx context.Context, since time.Time) (int, error) {
	args := m.Called(ctx, since)
	return args.Int(0), args.Error(1)
}

func (m *MockPageviewRepository) GetEventsBatch(ctx context.Context, since time.Time, limit, offset int) ([]domain.PageviewEvent, error) {
	args := m.Called(ctx, since, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PageviewEvent), args.Error(1)
}

func newTestStore(t *testing.T) *taxonomy.Store {
	t.Helper()
	store, err := taxonomy.NewStore()
	require.NoError(t, err)
	return store
}

func findPage(pages []domain.PageRecord, url string) *domain.PageRecord {
	for i := range pages {
		if pages[i].URL == url {
			return &pages[i]
		}
	}
	return nil
}
