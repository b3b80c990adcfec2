package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
	"github.com/seo-microservice/internal/routes"
	"github.com/seo-microservice/internal/taxonomy"
)

// RegistryUseCase synthesizes the complete virtual page registry from the
// current datastore snapshot: combo aggregation, page synthesis, override
// merge and traffic annotation, in that fixed order so statistics stay
// internally consistent. Nothing is persisted between builds except the
// override table and the raw pageview events.
type RegistryUseCase struct {
	listingRepo  repository.ListingRepository
	overrideRepo repository.OverrideRepository
	cacheRepo    repository.CacheRepository
	store        *taxonomy.Store
	combos       *ComboAggregator
	merger       *OverrideMerger
	traffic      *TrafficUseCase
	policy       IndexabilityPolicy
	logger       *zap.Logger
	cacheTTL     time.Duration
	batchSize    int
	fanout       int
}

func NewRegistryUseCase(
	listingRepo repository.ListingRepository,
	overrideRepo repository.OverrideRepository,
	cacheRepo repository.CacheRepository,
	store *taxonomy.Store,
	combos *ComboAggregator,
	merger *OverrideMerger,
	traffic *TrafficUseCase,
	policy IndexabilityPolicy,
	logger *zap.Logger,
	cacheTTL time.Duration,
	batchSize int,
	fanout int,
) *RegistryUseCase {
	if batchSize <= 0 {
		batchSize = 5000
	}
	if fanout <= 0 {
		fanout = 1
	}
	return &RegistryUseCase{
		listingRepo:  listingRepo,
		overrideRepo: overrideRepo,
		cacheRepo:    cacheRepo,
		store:        store,
		combos:       combos,
		merger:       merger,
		traffic:      traffic,
		policy:       policy,
		logger:       logger,
		cacheTTL:     cacheTTL,
		batchSize:    batchSize,
		fanout:       fanout,
	}
}

// GetRegistry serves the cached registry when fresh enough, rebuilding
// otherwise. refresh forces a rebuild.
func (uc *RegistryUseCase) GetRegistry(ctx context.Context, refresh bool) ([]domain.PageRecord, bool, error) {
	if !refresh {
		cached, err := uc.cacheRepo.GetRegistry(ctx)
		if err != nil {
			uc.logger.Warn("Registry cache read failed", zap.Error(err))
		}
		if cached != nil {
			return cached, true, nil
		}
	}

	pages, err := uc.Build(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := uc.cacheRepo.SetRegistry(ctx, pages, uc.cacheTTL); err != nil {
		uc.logger.Warn("Registry cache write failed", zap.Error(err))
	}
	return pages, false, nil
}

// Build runs one full registry build against the current data.
func (uc *RegistryUseCase) Build(ctx context.Context) ([]domain.PageRecord, error) {
	started := time.Now()

	listings, err := uc.listingRepo.GetListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get listings: %w", err)
	}
	attractions, err := uc.listingRepo.GetAttractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get attractions: %w", err)
	}
	facilities, err := uc.listingRepo.GetFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("get facilities: %w", err)
	}
	seoFacilities := taxonomy.BuildSeoFacilities(facilities)

	// A relation fetch failure costs only the combo pages, not the build.
	relations, err := uc.fetchRelations(ctx)
	if err != nil {
		uc.logger.Error("Relation fetch failed, skipping combo pages", zap.Error(err))
		relations = nil
	}
	combos := uc.combos.Aggregate(relations, seoFacilities, true)

	pages := uc.synthesize(listings, attractions, combos)

	overrides, err := uc.overrideRepo.GetOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("get overrides: %w", err)
	}
	pages = uc.merger.Merge(pages, overrides)

	// Traffic failure degrades to zeroed counters; the registry itself is
	// already built.
	if err := uc.traffic.Annotate(ctx, pages); err != nil {
		uc.logger.Error("Traffic aggregation failed, keeping zeroed counters", zap.Error(err))
	}

	uc.logger.Info("Registry build completed",
		zap.Int("pages", len(pages)),
		zap.Int("listings", len(listings)),
		zap.Int("combos", len(combos)),
		zap.Duration("took", time.Since(started)))
	return pages, nil
}

// listingStats aggregates one page's slice of the listing snapshot.
type listingStats struct {
	total          int
	published      int
	unpublished    int
	lastModifiedMs int64
}

func collectStats(listings []domain.ListingMeta, pred func(domain.ListingMeta) bool) listingStats {
	var stats listingStats
	for _, l := range listings {
		if !pred(l) {
			continue
		}
		stats.total++
		if l.IsPublished {
			stats.published++
		} else {
			stats.unpublished++
		}
		if l.LastModifiedMs > stats.lastModifiedMs {
			stats.lastModifiedMs = l.LastModifiedMs
		}
	}
	return stats
}

// synthesize produces the route-derived page list in the fixed order
// home, type index, statics, attractions, types, counties, regions,
// type-county, type-region, combos, listings. Every page's statistics come
// from filtering the in-memory snapshot; no per-page datastore round trip.
func (uc *RegistryUseCase) synthesize(listings []domain.ListingMeta, attractions []domain.AttractionMeta, combos []domain.ComboRecord) []domain.PageRecord {
	// Canonicalize county keys once so every predicate compares against the
	// catalog's normalized name.
	snapshot := make([]domain.ListingMeta, len(listings))
	copy(snapshot, listings)
	for i := range snapshot {
		if county, ok := uc.store.FindCountyByName(snapshot[i].JudetKey); ok {
			snapshot[i].JudetKey = taxonomy.Normalize(county.Name)
		}
	}

	var pages []domain.PageRecord
	seen := make(map[string]struct{})
	add := func(page domain.PageRecord) {
		if _, dup := seen[page.URL]; dup {
			uc.logger.Warn("Duplicate canonical URL skipped",
				zap.String("url", page.URL),
				zap.String("kind", string(page.Kind)))
			return
		}
		seen[page.URL] = struct{}{}
		pages = append(pages, page)
	}

	everything := func(domain.ListingMeta) bool { return true }
	allStats := collectStats(snapshot, everything)

	// (a) home: stats over all listings, indexability not count-gated.
	add(uc.routePage(routes.HomePath, domain.PageHome, "", "Cazări în România", true, true, allStats))

	// (b) type index, gated by the global published threshold.
	add(uc.routePage(routes.TypeIndexPath, domain.PageTypeIndex, "cazari", "Cazări",
		true, uc.policy.IsIndexable(allStats.published), allStats))

	// (c) fixed static pages: empty stats, fixed indexability, no menu.
	for _, static := range routes.StaticPages {
		add(uc.routePage(static.Path, domain.PageStatic, static.Path[1:], static.Title,
			false, static.Indexable, listingStats{}))
	}

	// (d) attraction index plus one page per published attraction.
	publishedAttractions := 0
	var attractionsModified int64
	for _, a := range attractions {
		if a.IsPublished {
			publishedAttractions++
		}
		if a.LastModifiedMs > attractionsModified {
			attractionsModified = a.LastModifiedMs
		}
	}
	index := uc.routePage(routes.AttractionIndexPath, domain.PageAttractionIndex, "atractii", "Atracții turistice",
		true, publishedAttractions > 0, listingStats{})
	index.LastModifiedMs = attractionsModified
	add(index)

	for _, a := range attractions {
		if !a.IsPublished {
			continue
		}
		add(domain.PageRecord{
			ID:             fmt.Sprintf("attraction:%d", a.ID),
			Source:         domain.SourceRoute,
			Slug:           a.Slug,
			URL:            routes.AttractionPath(a.Slug),
			Kind:           domain.PageAttraction,
			Title:          a.Title,
			Status:         domain.StatusPublished,
			Indexable:      true,
			LastModifiedMs: a.LastModifiedMs,
		})
	}

	// (e) one page per property type.
	for _, t := range uc.store.ListingTypes() {
		t := t
		stats := collectStats(snapshot, func(l domain.ListingMeta) bool { return l.TypeKey == t.Value })
		add(uc.routePage(routes.TypePath(t.Slug), domain.PageType, t.Slug, t.Label,
			true, uc.policy.IsIndexable(stats.published), stats))
	}

	// (f) one page per county.
	for _, county := range uc.store.Counties() {
		countyKey := taxonomy.Normalize(county.Name)
		stats := collectStats(snapshot, func(l domain.ListingMeta) bool { return l.JudetKey == countyKey })
		add(uc.routePage(routes.CountyPath(county.Slug), domain.PageCounty, county.Slug,
			"Cazare în "+county.Name, false, uc.policy.IsIndexable(stats.published), stats))
	}

	// (g) one page per region, both kinds.
	for _, region := range uc.store.Regions() {
		region := region
		kind := domain.PageRegion
		if region.Kind == domain.RegionMetro {
			kind = domain.PageLocality
		}
		stats := collectStats(snapshot, func(l domain.ListingMeta) bool {
			return uc.store.InRegion(region, l.CityKey, l.JudetKey)
		})
		add(uc.routePage(routes.RegionPath(region), kind, region.Slug,
			"Cazare în "+region.Name, false, uc.policy.IsIndexable(stats.published), stats))
	}

	// (h) one page per type x county pair.
	for _, t := range uc.store.ListingTypes() {
		t := t
		for _, county := range uc.store.Counties() {
			countyKey := taxonomy.Normalize(county.Name)
			stats := collectStats(snapshot, func(l domain.ListingMeta) bool {
				return l.TypeKey == t.Value && l.JudetKey == countyKey
			})
			add(uc.routePage(
				routes.TypeLocationPath(t.Slug, routes.EncodeCountySegment(county)),
				domain.PageTypeCounty, county.Slug, t.Label+" în "+county.Name,
				false, uc.policy.IsIndexable(stats.published), stats))
		}
	}

	// (i) one page per type x region pair.
	for _, t := range uc.store.ListingTypes() {
		t := t
		for _, region := range uc.store.Regions() {
			region := region
			kind := domain.PageTypeRegion
			if region.Kind == domain.RegionMetro {
				kind = domain.PageTypeLocality
			}
			stats := collectStats(snapshot, func(l domain.ListingMeta) bool {
				return l.TypeKey == t.Value && uc.store.InRegion(region, l.CityKey, l.JudetKey)
			})
			add(uc.routePage(
				routes.TypeLocationPath(t.Slug, routes.EncodeRegionSegment(region)),
				kind, region.Slug, t.Label+" în "+region.Name,
				false, uc.policy.IsIndexable(stats.published), stats))
		}
	}

	// (j) one page per combo still backed by at least one known listing.
	// Stale combos referencing deleted listings are expected churn and are
	// dropped without a flag.
	for _, combo := range combos {
		combo := combo
		stats := collectStats(snapshot, func(l domain.ListingMeta) bool {
			_, ok := combo.ListingIDs[l.ID]
			return ok
		})
		if stats.total == 0 {
			continue
		}
		add(uc.routePage(
			routes.TypeFacilityCountyPath(combo.Key.TypeSlug, combo.Key.CountySlug, combo.Key.FacilitySlug),
			domain.PageTypeFacilityCounty, combo.Key.FacilitySlug,
			combo.TypeLabel+" cu "+combo.FacilityName+" în "+combo.CountyName,
			false, uc.policy.IsIndexable(stats.published), stats))
	}

	// (k) one page per listing. A listing's publish state fully determines
	// its indexability; the preview URL only matters while unpublished.
	for _, l := range snapshot {
		status := domain.StatusUnpublished
		if l.IsPublished {
			status = domain.StatusPublished
		}
		page := domain.PageRecord{
			ID:              fmt.Sprintf("listing:%d", l.ID),
			Source:          domain.SourceRoute,
			Slug:            l.Slug,
			URL:             routes.ListingPath(l.Slug),
			Kind:            domain.PageListing,
			Title:           l.Title,
			Status:          status,
			Indexable:       l.IsPublished,
			TotalListings:   1,
			LastModifiedMs:  l.LastModifiedMs,
			CanToggleStatus: true,
		}
		if l.IsPublished {
			page.PublishedListings = 1
		} else {
			page.UnpublishedListings = 1
			page.PreviewURL = routes.ListingPreviewPath(l.Slug)
		}
		add(page)
	}

	return pages
}

func (uc *RegistryUseCase) routePage(url string, kind domain.PageKind, slug, title string, inMenu, indexable bool, stats listingStats) domain.PageRecord {
	return domain.PageRecord{
		ID:                  "route:" + url,
		Source:              domain.SourceRoute,
		Slug:                slug,
		URL:                 url,
		Kind:                kind,
		Title:               title,
		Status:              domain.StatusPublished,
		InMenu:              inMenu,
		Indexable:           indexable,
		TotalListings:       stats.total,
		PublishedListings:   stats.published,
		UnpublishedListings: stats.unpublished,
		LastModifiedMs:      stats.lastModifiedMs,
	}
}

// fetchRelations plans offset batches from a count and fetches them with a
// bounded fan-out, joined before aggregation.
func (uc *RegistryUseCase) fetchRelations(ctx context.Context) ([]domain.RelationRow, error) {
	total, err := uc.listingRepo.CountRelations(ctx)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	batches := (total + uc.batchSize - 1) / uc.batchSize
	results := make([][]domain.RelationRow, batches)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	sem := make(chan struct{}, uc.fanout)

	for b := 0; b < batches; b++ {
		wg.Add(1)
		go func(batch int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rows, err := uc.listingRepo.GetRelationsBatch(ctx, uc.batchSize, batch*uc.batchSize)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[batch] = rows
		}(b)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	rows := make([]domain.RelationRow, 0, total)
	for _, batch := range results {
		rows = append(rows, batch...)
	}
	return rows, nil
}
