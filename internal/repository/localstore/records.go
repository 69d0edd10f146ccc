package localstore

import (
	"time"

	"notevault-be/internal/entity"
)

// Persisted record shapes. Notes embed their selected category ids instead
// of link rows; the category set is resolved against the category collection
// on every read, dropping ids that no longer resolve.

type categoryRecord struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type noteRecord struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	UserId      string     `json:"user_id"`
	// CategoryId is the legacy singular link; CategoryIds is the current
	// embedded many-to-many set. An empty set persists as an explicit empty
	// array so a cleared set is distinguishable from a record that predates
	// the field.
	CategoryId  *string   `json:"category_id"`
	CategoryIds []string  `json:"category_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func categoryToEntity(r categoryRecord) *entity.Category {
	return &entity.Category{
		Id:          r.Id,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Color:       r.Color,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func categoryFromEntity(c *entity.Category) categoryRecord {
	return categoryRecord{
		Id:          c.Id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// noteToEntity resolves the embedded category ids against the category
// collection. Only records that predate the embedded set (the field was
// never written, so it unmarshals as nil) fall back to the legacy singular
// category id; an explicit empty set is authoritative. Unresolved ids are
// dropped, not errors.
func noteToEntity(r noteRecord, categories []categoryRecord) *entity.Note {
	byId := make(map[string]categoryRecord, len(categories))
	for _, c := range categories {
		byId[c.Id] = c
	}

	ids := r.CategoryIds
	if ids == nil && r.CategoryId != nil {
		ids = []string{*r.CategoryId}
	}

	resolved := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byId[id]; ok {
			resolved = append(resolved, *categoryToEntity(c))
		}
	}

	return &entity.Note{
		Id:          r.Id,
		Title:       r.Title,
		Content:     r.Content,
		Published:   r.Published,
		PublishedAt: r.PublishedAt,
		UserId:      r.UserId,
		CategoryId:  r.CategoryId,
		Categories:  resolved,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
