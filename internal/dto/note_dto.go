package dto

import "time"

type UpdateNoteRequest struct {
	Id          string
	Title       string   `json:"title" validate:"required,max=255"`
	Content     string   `json:"content"`
	CategoryIds []string `json:"category_ids"`
}

type SetNoteCategoriesRequest struct {
	Id          string
	CategoryIds []string `json:"category_ids"`
}

type NoteResponse struct {
	Id          string             `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Published   bool               `json:"published"`
	PublishedAt *time.Time         `json:"published_at"`
	CategoryId  *string            `json:"category_id"`
	Categories  []CategoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
