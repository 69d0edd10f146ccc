package contract

import (
	"context"

	"notevault-be/internal/entity"
)

type NoteRepository interface {
	// ListByUser returns the user's notes newest-first, each with its
	// Categories set hydrated through the link table.
	ListByUser(ctx context.Context, userId string) ([]*entity.Note, error)
	Get(ctx context.Context, id, userId string) (*entity.Note, error)
	Create(ctx context.Context, note *entity.Note) (*entity.Note, error)
	// Update merges the scalar fields (title, content, legacy category id)
	// over the stored record and refreshes UpdatedAt.
	Update(ctx context.Context, note *entity.Note) (*entity.Note, error)
	Delete(ctx context.Context, id, userId string) error

	// SetCategories replaces the note's link set with exactly categoryIds
	// and returns the authoritative re-fetched note.
	SetCategories(ctx context.Context, id, userId string, categoryIds []string) (*entity.Note, error)

	// Publish and Unpublish set or clear Published and PublishedAt together.
	Publish(ctx context.Context, id, userId string) (*entity.Note, error)
	Unpublish(ctx context.Context, id, userId string) (*entity.Note, error)

	// Public read surface: published notes only, ordered by PublishedAt
	// descending with UpdatedAt as tie breaker.
	ListPublished(ctx context.Context) ([]*entity.Note, error)
	GetPublished(ctx context.Context, id string) (*entity.Note, error)
}
