package mapper

import (
	"notevault-be/internal/entity"
	"notevault-be/internal/model"
)

type NoteMapper struct {
	categoryMapper *CategoryMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		categoryMapper: NewCategoryMapper(),
	}
}

// ToEntity flattens the joined link rows into a Categories slice, filtering
// out links whose category did not resolve.
func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(n.NoteCategories))
	for _, nc := range n.NoteCategories {
		if nc.Category == nil {
			continue
		}
		categories = append(categories, *m.categoryMapper.ToEntity(nc.Category))
	}

	return &entity.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		UserId:      n.UserId,
		CategoryId:  n.CategoryId,
		Categories:  categories,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Published:   n.Published,
		PublishedAt: n.PublishedAt,
		UserId:      n.UserId,
		CategoryId:  n.CategoryId,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
