package contract

import (
	"context"

	"notevault-be/internal/entity"
)

type CategoryRepository interface {
	// List returns all categories. The local store seeds the five built-in
	// defaults on the first-ever call.
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	// Create and Update recompute Slug from Name before persisting.
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
