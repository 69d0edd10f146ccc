package entity

import "time"

// Category is global, not owned per-user; the remote backend scopes access
// through its row policy. Slug is derived from Name, never set directly.
// Slug collisions are possible and not deduplicated at this layer.
type Category struct {
	Id          string
	Name        string
	Slug        string
	Description *string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
