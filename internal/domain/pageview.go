package domain

import "time"

// PageviewEvent is one raw pageview as recorded by the marketplace frontend.
type PageviewEvent struct {
	Path      string    `json:"path" db:"path"`
	AnonID    string    `json:"anon_id" db:"anon_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// StreamListingEvents carries listing create/update/delete notifications
// from the marketplace CRUD layer.
const StreamListingEvents = "listing-events"

// StreamMessage is one raw message read from a Redis stream.
type StreamMessage struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// ListingChangeEvent is published by the marketplace CRUD layer whenever a
// listing is created, edited or deleted. The worker invalidates the cached
// registry in response.
type ListingChangeEvent struct {
	ListingID int64  `json:"listing_id"`
	Action    string `json:"action"`
	ChangedAt int64  `json:"changed_at_ms"`
}
