package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/usecase/dto"
)

// StatsUseCase summarizes the merged registry for dashboards.
type StatsUseCase struct {
	registryUC *RegistryUseCase
	logger     *zap.Logger
}

func NewStatsUseCase(registryUC *RegistryUseCase, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		registryUC: registryUC,
		logger:     logger,
	}
}

func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*dto.RegistryStats, error) {
	pages, _, err := uc.registryUC.GetRegistry(ctx, false)
	if err != nil {
		return nil, err
	}

	stats := &dto.RegistryStats{
		TotalPages:  len(pages),
		PagesByKind: make(map[string]int),
	}
	for _, page := range pages {
		stats.PagesByKind[string(page.Kind)]++
		if page.Indexable {
			stats.IndexablePages++
		}
		if page.IsInconsistent {
			stats.InconsistentPages++
		}
		if page.Source == domain.SourceZone {
			stats.OverridePages++
		}
		if page.Kind == domain.PageListing {
			stats.TotalListings++
			if page.Status == domain.StatusPublished {
				stats.PublishedListings++
			}
		}
	}
	return stats, nil
}
