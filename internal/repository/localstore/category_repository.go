package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"notevault-be/internal/apperror"
	"notevault-be/internal/entity"
	"notevault-be/pkg/utils"
)

type categoryRepository struct {
	store *Store
}

// loadCategories returns the persisted category collection, seeding and
// persisting the built-in defaults on the first-ever call.
func (r *categoryRepository) loadCategories() ([]categoryRecord, error) {
	var records []categoryRecord
	found, err := r.store.read(keyCategories, &records)
	if err != nil {
		return nil, err
	}
	if !found {
		records = defaultCategories(time.Now().UTC())
		if err := r.store.write(keyCategories, records); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadCategories()
	if err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(records))
	for i, rec := range records {
		categories[i] = categoryToEntity(rec)
	}
	return categories, nil
}

func (r *categoryRepository) Get(ctx context.Context, id string) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadCategories()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Id == id {
			return categoryToEntity(rec), nil
		}
	}
	return nil, apperror.NotFound("category")
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadCategories()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := categoryFromEntity(category)
	rec.Id = uuid.New().String()
	rec.Slug = utils.Slugify(rec.Name)
	rec.CreatedAt = now
	rec.UpdatedAt = now

	records = append(records, rec)
	if err := r.store.write(keyCategories, records); err != nil {
		return nil, err
	}
	return categoryToEntity(rec), nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadCategories()
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if rec.Id != category.Id {
			continue
		}
		rec.Name = category.Name
		rec.Slug = utils.Slugify(category.Name)
		rec.Description = category.Description
		rec.Color = category.Color
		rec.UpdatedAt = time.Now().UTC()
		records[i] = rec

		if err := r.store.write(keyCategories, records); err != nil {
			return nil, err
		}
		return categoryToEntity(rec), nil
	}
	return nil, apperror.NotFound("category")
}

// Delete removes the category row only. Notes keep any embedded reference to
// the deleted id; reads drop unresolved ids, so the dangling link is
// invisible but never cleaned up here.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadCategories()
	if err != nil {
		return err
	}

	filtered := records[:0]
	for _, rec := range records {
		if rec.Id != id {
			filtered = append(filtered, rec)
		}
	}
	return r.store.write(keyCategories, filtered)
}
