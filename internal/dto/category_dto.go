package dto

import "time"

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       string  `json:"color" validate:"required"`
}

type UpdateCategoryRequest struct {
	Id          string
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       string  `json:"color" validate:"required"`
}

type CategoryResponse struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
