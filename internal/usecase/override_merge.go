package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/routes"
	"github.com/seo-microservice/internal/taxonomy"
)

// OverrideMerger folds the persisted manual override ("zone") table into a
// synthesized registry. Route-derived slug/title win over override values
// unless the override carries a non-placeholder value and the target entry
// is itself zone-sourced; the operator-curated fields (status, menu
// visibility, indexability, toggle capability) always win.
type OverrideMerger struct {
	store  *taxonomy.Store
	logger *zap.Logger
}

func NewOverrideMerger(store *taxonomy.Store, logger *zap.Logger) *OverrideMerger {
	return &OverrideMerger{
		store:  store,
		logger: logger,
	}
}

// classifiedOverride is one zone row after best-effort kind inference.
type classifiedOverride struct {
	kind domain.PageKind
	url  string
}

// classify infers kind and URL for a zone row. The explicit path column
// wins when present; otherwise the free-text zone type is inspected,
// checking locality hints before the generic region pattern because a metro
// locality is a strict subset of a region and must win ties.
func (m *OverrideMerger) classify(row domain.OverrideRow) classifiedOverride {
	if row.Path != nil && strings.TrimSpace(*row.Path) != "" {
		path := strings.TrimSpace(*row.Path)
		return classifiedOverride{kind: m.kindFromPath(path), url: path}
	}

	slug := strings.TrimSpace(row.Slug)
	zoneKey := taxonomy.Normalize(row.ZoneType)

	// A slug naming a metro region is a locality regardless of what the
	// zone-type text claims.
	if region, ok := m.store.FindRegionBySlug(slug); ok && region.Kind == domain.RegionMetro {
		return classifiedOverride{kind: domain.PageLocality, url: routes.LocalityRoot + region.Slug}
	}

	switch {
	case containsAny(zoneKey, "localitate", "locality", "metropolitan", "oras"):
		return classifiedOverride{kind: domain.PageLocality, url: routes.LocalityRoot + slug}
	case containsAny(zoneKey, "regiune", "region"):
		return classifiedOverride{kind: domain.PageRegion, url: routes.RegionRoot + slug}
	case containsAny(zoneKey, "judet", "county"):
		return classifiedOverride{kind: domain.PageCounty, url: routes.CountyRoot + slug}
	case containsAny(zoneKey, "tip", "type", "categorie"):
		return classifiedOverride{kind: domain.PageType, url: routes.TypeIndexPath + "/" + slug}
	}

	url := ""
	if slug != "" {
		url = "/" + slug
	}
	return classifiedOverride{kind: domain.PageUnclassifiedZone, url: url}
}

func (m *OverrideMerger) kindFromPath(path string) domain.PageKind {
	switch path {
	case routes.HomePath:
		return domain.PageHome
	case routes.TypeIndexPath:
		return domain.PageTypeIndex
	case routes.AttractionIndexPath:
		return domain.PageAttractionIndex
	}
	for _, static := range routes.StaticPages {
		if path == static.Path {
			return domain.PageStatic
		}
	}

	switch {
	case strings.HasPrefix(path, routes.CountyRoot):
		return domain.PageCounty
	case strings.HasPrefix(path, routes.LocalityRoot):
		return domain.PageLocality
	case strings.HasPrefix(path, routes.RegionRoot):
		// A metro slug under the region root is still a locality.
		if region, ok := m.store.FindRegionBySlug(strings.TrimPrefix(path, routes.RegionRoot)); ok && region.Kind == domain.RegionMetro {
			return domain.PageLocality
		}
		return domain.PageRegion
	case strings.HasPrefix(path, routes.ListingRoot):
		return domain.PageListing
	case strings.HasPrefix(path, routes.AttractionRoot):
		return domain.PageAttraction
	case strings.HasPrefix(path, routes.TypeIndexPath+"/"):
		rest := strings.TrimPrefix(path, routes.TypeIndexPath+"/")
		parts := strings.Split(rest, "/")
		if _, ok := m.store.TypeBySlug(parts[0]); !ok {
			return domain.PageUnclassifiedZone
		}
		switch len(parts) {
		case 1:
			return domain.PageType
		case 2:
			switch {
			case strings.HasPrefix(parts[1], routes.PrefixCounty):
				return domain.PageTypeCounty
			case strings.HasPrefix(parts[1], routes.PrefixLocality):
				return domain.PageTypeLocality
			case strings.HasPrefix(parts[1], routes.PrefixRegion):
				return domain.PageTypeRegion
			}
		case 3:
			return domain.PageTypeFacilityCounty
		}
	}
	return domain.PageUnclassifiedZone
}

// Merge applies the override table to the synthesized registry, keyed by
// canonical URL. Orphaned rows are inserted and surfaced, never dropped.
func (m *OverrideMerger) Merge(pages []domain.PageRecord, rows []domain.OverrideRow) []domain.PageRecord {
	byURL := make(map[string]int, len(pages))
	for i, page := range pages {
		byURL[page.URL] = i
	}

	for _, row := range rows {
		classified := m.classify(row)

		if classified.url == "" {
			// No resolvable URL at all. Keyed synthetically so the row stays
			// visible to operators.
			m.logger.Warn("Override row has no resolvable URL",
				zap.Int64("id", row.ID),
				zap.String("zone_type", row.ZoneType))
			pages = append(pages, m.pageFromOverride(row, classified.kind, fmt.Sprintf("/zone/%d", row.ID), true))
			continue
		}

		idx, ok := byURL[classified.url]
		if !ok {
			inconsistent := classified.kind == domain.PageUnclassifiedZone
			if inconsistent {
				m.logger.Warn("Unclassifiable override row retained",
					zap.Int64("id", row.ID),
					zap.String("zone_type", row.ZoneType),
					zap.String("url", classified.url))
			}
			page := m.pageFromOverride(row, classified.kind, classified.url, inconsistent)
			byURL[page.URL] = len(pages)
			pages = append(pages, page)
			continue
		}

		page := &pages[idx]
		if !isPlaceholder(row.Slug) && page.Source == domain.SourceZone {
			page.Slug = row.Slug
		}
		if !isPlaceholder(row.Title) && page.Source == domain.SourceZone {
			page.Title = row.Title
		}
		page.Status = parseOverrideStatus(row.Status)
		page.InMenu = row.InMenu
		page.Indexable = row.Indexable
		page.CanToggleStatus = true
		page.CanToggleIndex = true
		page.ID = zonePageID(row.ID)
		if row.LastModifiedMs > page.LastModifiedMs {
			page.LastModifiedMs = row.LastModifiedMs
		}
	}

	return pages
}

func (m *OverrideMerger) pageFromOverride(row domain.OverrideRow, kind domain.PageKind, url string, inconsistent bool) domain.PageRecord {
	title := row.Title
	if isPlaceholder(title) {
		title = row.Slug
	}
	return domain.PageRecord{
		ID:              zonePageID(row.ID),
		Source:          domain.SourceZone,
		Slug:            row.Slug,
		URL:             url,
		Kind:            kind,
		Title:           title,
		Status:          parseOverrideStatus(row.Status),
		InMenu:          row.InMenu,
		Indexable:       row.Indexable,
		LastModifiedMs:  row.LastModifiedMs,
		CanToggleStatus: true,
		CanToggleIndex:  true,
		IsInconsistent:  inconsistent,
	}
}

func zonePageID(id int64) string {
	return fmt.Sprintf("zone:%d", id)
}

// placeholderValues are override field values that must never overwrite a
// synthesized value.
var placeholderValues = map[string]struct{}{
	"":         {},
	"-":        {},
	"n/a":      {},
	"na":       {},
	"null":     {},
	"untitled": {},
}

func isPlaceholder(s string) bool {
	_, ok := placeholderValues[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func parseOverrideStatus(raw string) domain.PageStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "published", "publicat", "active", "1", "true":
		return domain.StatusPublished
	case "draft", "ciorna":
		return domain.StatusDraft
	default:
		return domain.StatusUnpublished
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
