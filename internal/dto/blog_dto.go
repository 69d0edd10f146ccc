package dto

import "time"

// BlogNoteResponse is the public read shape: published notes only, with the
// shareable URL composed as {client origin}/blog/{id}.
type BlogNoteResponse struct {
	Id          string             `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	PublishedAt *time.Time         `json:"published_at"`
	Categories  []CategoryResponse `json:"categories"`
	UpdatedAt   time.Time          `json:"updated_at"`
	ShareURL    string             `json:"share_url,omitempty"`
}
