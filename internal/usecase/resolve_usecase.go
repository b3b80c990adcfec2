package usecase

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
	"github.com/seo-microservice/internal/pkg/errors"
	"github.com/seo-microservice/internal/routes"
	"github.com/seo-microservice/internal/taxonomy"
	"github.com/seo-microservice/internal/usecase/dto"
)

// ResolveUseCase turns a raw request path into either a canonical page hit
// or a permanent redirect to the canonical form. Non-canonical but
// resolvable segments (legacy ordering, un-prefixed segments, distance-1
// typos) never render content in place.
type ResolveUseCase struct {
	registryUC  *RegistryUseCase
	listingRepo repository.ListingRepository
	store       *taxonomy.Store
	codec       *routes.Codec
	logger      *zap.Logger
}

func NewResolveUseCase(
	registryUC *RegistryUseCase,
	listingRepo repository.ListingRepository,
	store *taxonomy.Store,
	codec *routes.Codec,
	logger *zap.Logger,
) *ResolveUseCase {
	return &ResolveUseCase{
		registryUC:  registryUC,
		listingRepo: listingRepo,
		store:       store,
		codec:       codec,
		logger:      logger,
	}
}

func (uc *ResolveUseCase) Resolve(ctx context.Context, rawPath string) (*dto.ResolveResponse, error) {
	path := cleanPath(rawPath)

	pages, _, err := uc.registryUC.GetRegistry(ctx, false)
	if err != nil {
		return nil, err
	}
	byURL := make(map[string]*domain.PageRecord, len(pages))
	for i := range pages {
		byURL[pages[i].URL] = &pages[i]
	}

	canonical, ok := uc.canonicalize(ctx, path)
	if !ok {
		return nil, errors.ErrSegmentNotFound
	}

	if canonical != path {
		return &dto.ResolveResponse{
			Status:   http.StatusMovedPermanently,
			Location: canonical,
		}, nil
	}

	// A preview path renders the listing page itself.
	lookup := canonical
	if strings.HasPrefix(canonical, routes.ListingPreviewRoot) {
		lookup = routes.ListingPath(strings.TrimPrefix(canonical, routes.ListingPreviewRoot))
	}

	page, ok := byURL[lookup]
	if !ok {
		return nil, errors.ErrPageNotFound
	}
	return &dto.ResolveResponse{
		Status: http.StatusOK,
		Page:   page,
	}, nil
}

// canonicalize maps a cleaned path to its canonical form, reporting false
// when no taxonomy entity resolves.
func (uc *ResolveUseCase) canonicalize(ctx context.Context, path string) (string, bool) {
	if path == routes.HomePath || path == routes.TypeIndexPath || path == routes.AttractionIndexPath {
		return path, true
	}
	for _, static := range routes.StaticPages {
		if path == static.Path {
			return path, true
		}
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch segments[0] {
	case "judet", "regiune", "localitate":
		if len(segments) != 2 {
			return "", false
		}
		return uc.canonicalizeLocation(segments[0], segments[1])
	case "cazari":
		return uc.canonicalizeTypePath(ctx, segments[1:])
	case "cazare", "atractie":
		if len(segments) != 2 {
			return "", false
		}
		return path, true
	case "previzualizare":
		// Operator preview of an unpublished listing.
		if len(segments) == 3 && segments[1] == "cazare" {
			return routes.ListingPreviewRoot + segments[2], true
		}
	}
	return "", false
}

// canonicalizeLocation resolves the slug against the catalog named by the
// root segment first. Metro slugs shadow county slugs (brasov, bucuresti),
// so /localitate and /regiune must prefer region resolution or the locality
// pages the registry synthesizes would be unreachable behind a county
// redirect. The opposite catalog stays as a legacy fallback either way.
func (uc *ResolveUseCase) canonicalizeLocation(root, slug string) (string, bool) {
	if root == "regiune" || root == "localitate" {
		if region, ok := uc.store.FindRegionBySlug(slug); ok {
			return routes.RegionPath(region), true
		}
		if county, ok := uc.store.FindCountyBySlug(slug); ok {
			return routes.CountyPath(county.Slug), true
		}
		return "", false
	}

	if county, ok := uc.store.FindCountyBySlug(slug); ok {
		return routes.CountyPath(county.Slug), true
	}
	if region, ok := uc.store.FindRegionBySlug(slug); ok {
		return routes.RegionPath(region), true
	}
	return "", false
}

// canonicalizeTypePath handles /cazari/<type>[/<segment>[/<segment>]].
func (uc *ResolveUseCase) canonicalizeTypePath(ctx context.Context, tail []string) (string, bool) {
	if len(tail) == 0 || len(tail) > 3 {
		return "", false
	}
	listingType, ok := uc.store.TypeBySlug(tail[0])
	if !ok {
		return "", false
	}

	switch len(tail) {
	case 1:
		return routes.TypePath(listingType.Slug), true

	case 2:
		location, ok := uc.codec.DecodeLocationSegment(tail[1])
		if !ok {
			return "", false
		}
		return routes.TypeLocationPath(listingType.Slug, location.CanonicalSegment), true

	default:
		facilitiesBySlug, err := uc.facilitySlugTable(ctx)
		if err != nil {
			uc.logger.Error("Facility table fetch failed during resolution", zap.Error(err))
			return "", false
		}
		composite, ok := uc.codec.DecodeComposite(listingType, tail[1], tail[2], facilitiesBySlug)
		if !ok {
			return "", false
		}
		return composite.Canonical, true
	}
}

func (uc *ResolveUseCase) facilitySlugTable(ctx context.Context) (map[string]domain.SeoFacility, error) {
	facilities, err := uc.listingRepo.GetFacilities(ctx)
	if err != nil {
		return nil, err
	}
	table := make(map[string]domain.SeoFacility)
	for _, f := range taxonomy.BuildSeoFacilities(facilities) {
		table[f.Slug] = f
	}
	return table, nil
}

// cleanPath trims query, fragment and trailing slashes.
func cleanPath(raw string) string {
	path := raw
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return routes.HomePath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
