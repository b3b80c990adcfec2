package domain

// OverrideRow is one manually curated "zone" row from the persisted
// override table. Path is the explicit URL column when present; ZoneType is
// the free-text kind hint used for best-effort classification otherwise.
type OverrideRow struct {
	ID             int64   `json:"id" db:"id"`
	Path           *string `json:"path,omitempty" db:"path"`
	ZoneType       string  `json:"zone_type" db:"zone_type"`
	Slug           string  `json:"slug" db:"slug"`
	Title          string  `json:"title" db:"title"`
	Status         string  `json:"status" db:"status"`
	InMenu         bool    `json:"in_menu" db:"in_menu"`
	Indexable      bool    `json:"indexable" db:"indexable"`
	LastModifiedMs int64   `json:"last_modified_ms" db:"last_modified_ms"`
}
