package entity

import "time"

// Note content is an opaque HTML blob; the data layer never parses or
// sanitizes it. Published and PublishedAt are always updated together:
// Published == true iff PublishedAt != nil.
type Note struct {
	Id          string
	Title       string
	Content     string
	Published   bool
	PublishedAt *time.Time
	UserId      string
	// CategoryId is the legacy singular link kept for records written
	// before the note_categories table existed.
	CategoryId *string
	Categories []Category
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CategoryIds returns the ids of the hydrated category set.
func (n *Note) CategoryIds() []string {
	ids := make([]string, len(n.Categories))
	for i, c := range n.Categories {
		ids[i] = c.Id
	}
	return ids
}
