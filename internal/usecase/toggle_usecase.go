package usecase

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
	"github.com/seo-microservice/internal/pkg/errors"
	"github.com/seo-microservice/internal/usecase/dto"
)

// ToggleUseCase applies operator publish/indexability flips. Toggles are
// single-row idempotent writes; they never touch the build pipeline beyond
// invalidating the cached registry so the next build re-reads them.
type ToggleUseCase struct {
	listingRepo  repository.ListingRepository
	overrideRepo repository.OverrideRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
}

func NewToggleUseCase(
	listingRepo repository.ListingRepository,
	overrideRepo repository.OverrideRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *ToggleUseCase {
	return &ToggleUseCase{
		listingRepo:  listingRepo,
		overrideRepo: overrideRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

func (uc *ToggleUseCase) Toggle(ctx context.Context, req dto.ToggleRequest) (*dto.ToggleResponse, error) {
	kind, id, ok := splitPageID(req.ID)
	if !ok {
		return nil, errors.ErrPageNotFound
	}

	var toggled dto.ToggledPage
	switch kind {
	case "listing":
		// A listing's indexability equals its publish state, so only the
		// publish toggle applies.
		if req.Action != dto.ActionTogglePublish {
			return nil, errors.ErrToggleNotAllowed
		}
		listing, err := uc.listingRepo.TogglePublish(ctx, id)
		if err != nil {
			uc.logger.Error("Listing toggle failed", zap.Int64("id", id), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		status := domain.StatusUnpublished
		if listing.IsPublished {
			status = domain.StatusPublished
		}
		toggled = dto.ToggledPage{
			ID:             req.ID,
			Status:         status,
			Indexable:      listing.IsPublished,
			LastModifiedMs: listing.LastModifiedMs,
		}

	case "zone":
		var (
			row *domain.OverrideRow
			err error
		)
		switch req.Action {
		case dto.ActionTogglePublish:
			row, err = uc.overrideRepo.ToggleStatus(ctx, id)
		case dto.ActionToggleNoindex:
			row, err = uc.overrideRepo.ToggleIndexable(ctx, id)
		default:
			return nil, errors.ErrInvalidToggleAction
		}
		if err != nil {
			uc.logger.Error("Zone toggle failed", zap.Int64("id", id), zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		toggled = dto.ToggledPage{
			ID:             req.ID,
			Status:         parseOverrideStatus(row.Status),
			Indexable:      row.Indexable,
			InMenu:         row.InMenu,
			LastModifiedMs: row.LastModifiedMs,
		}

	default:
		return nil, errors.ErrToggleNotAllowed
	}

	if err := uc.cacheRepo.InvalidateRegistry(ctx); err != nil {
		uc.logger.Warn("Registry cache invalidation failed after toggle", zap.Error(err))
	}

	return &dto.ToggleResponse{Page: toggled}, nil
}

// splitPageID parses "listing:<n>" / "zone:<n>" registry IDs.
func splitPageID(pageID string) (string, int64, bool) {
	kind, rawID, found := strings.Cut(pageID, ":")
	if !found {
		return "", 0, false
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false
	}
	return kind, id, true
}
