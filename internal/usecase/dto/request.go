package dto

// ToggleAction values accepted by the toggle endpoint.
const (
	ActionTogglePublish = "toggle_publish"
	ActionToggleNoindex = "toggle_noindex"
)

// ToggleRequest is the operator toggle payload. ID is a registry page ID
// ("listing:<n>" or "zone:<n>").
type ToggleRequest struct {
	ID     string `json:"id" validate:"required"`
	Action string `json:"action" validate:"required,oneof=toggle_publish toggle_noindex"`
}

// ResolveRequest carries the raw request path to resolve.
type ResolveRequest struct {
	Path string `json:"path" validate:"required"`
}
