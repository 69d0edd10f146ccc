package service

import (
	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
)

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(categories []entity.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		out[i] = toCategoryResponse(&categories[i])
	}
	return out
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		CategoryId:  n.CategoryId,
		Categories:  toCategoryResponses(n.Categories),
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	out := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = toNoteResponse(n)
	}
	return out
}

func toUserDTO(u *entity.User) dto.UserDTO {
	return dto.UserDTO{
		Id:    u.Id,
		Email: u.Email,
		Name:  u.Name,
	}
}
