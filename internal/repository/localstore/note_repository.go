package localstore

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"notevault-be/internal/apperror"
	"notevault-be/internal/entity"
)

type noteRepository struct {
	store *Store
}

func (r *noteRepository) loadNotes() ([]noteRecord, error) {
	var records []noteRecord
	if _, err := r.store.read(keyNotes, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *noteRepository) loadCategories() ([]categoryRecord, error) {
	return (&categoryRepository{store: r.store}).loadCategories()
}

func (r *noteRepository) hydrate(records []noteRecord) ([]*entity.Note, error) {
	categories, err := r.loadCategories()
	if err != nil {
		return nil, err
	}
	notes := make([]*entity.Note, len(records))
	for i, rec := range records {
		notes[i] = noteToEntity(rec, categories)
	}
	return notes, nil
}

func (r *noteRepository) ListByUser(ctx context.Context, userId string) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}

	// The collection is prepend-ordered (newest first) already; filter to
	// the owning user. The remote backend enforces this with a row policy,
	// the local store with this explicit filter.
	owned := make([]noteRecord, 0, len(records))
	for _, rec := range records {
		if rec.UserId == userId {
			owned = append(owned, rec)
		}
	}
	return r.hydrate(owned)
}

func (r *noteRepository) Get(ctx context.Context, id, userId string) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.get(id, userId)
}

func (r *noteRepository) get(id, userId string) (*entity.Note, error) {
	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Id == id && rec.UserId == userId {
			categories, err := r.loadCategories()
			if err != nil {
				return nil, err
			}
			return noteToEntity(rec, categories), nil
		}
	}
	return nil, apperror.NotFound("note")
}

func (r *noteRepository) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := noteRecord{
		Id:          uuid.New().String(),
		Title:       note.Title,
		Content:     note.Content,
		Published:   false,
		PublishedAt: nil,
		UserId:      note.UserId,
		CategoryId:  note.CategoryId,
		CategoryIds: note.CategoryIds(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Prepend: the collection stays newest-first.
	records = append([]noteRecord{rec}, records...)
	if err := r.store.write(keyNotes, records); err != nil {
		return nil, err
	}

	categories, err := r.loadCategories()
	if err != nil {
		return nil, err
	}
	return noteToEntity(rec, categories), nil
}

// mutate applies fn to the record with the given id, refreshes UpdatedAt,
// persists the collection and returns the hydrated result. NotFound when the
// id is absent or owned by another user.
func (r *noteRepository) mutate(id, userId string, fn func(*noteRecord)) (*entity.Note, error) {
	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Id != id || records[i].UserId != userId {
			continue
		}
		fn(&records[i])
		records[i].UpdatedAt = time.Now().UTC()

		if err := r.store.write(keyNotes, records); err != nil {
			return nil, err
		}
		categories, err := r.loadCategories()
		if err != nil {
			return nil, err
		}
		return noteToEntity(records[i], categories), nil
	}
	return nil, apperror.NotFound("note")
}

func (r *noteRepository) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.mutate(note.Id, note.UserId, func(rec *noteRecord) {
		rec.Title = note.Title
		rec.Content = note.Content
		rec.CategoryId = note.CategoryId
	})
}

// SetCategories replaces the embedded category set wholesale. The
// replacement is idempotent: applying the same set twice converges on the
// same state.
func (r *noteRepository) SetCategories(ctx context.Context, id, userId string, categoryIds []string) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	deduped := make([]string, 0, len(categoryIds))
	seen := make(map[string]bool, len(categoryIds))
	for _, cid := range categoryIds {
		if !seen[cid] {
			deduped = append(deduped, cid)
			seen[cid] = true
		}
	}

	return r.mutate(id, userId, func(rec *noteRecord) {
		rec.CategoryIds = deduped
	})
}

func (r *noteRepository) Publish(ctx context.Context, id, userId string) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.mutate(id, userId, func(rec *noteRecord) {
		now := time.Now().UTC()
		rec.Published = true
		rec.PublishedAt = &now
	})
}

func (r *noteRepository) Unpublish(ctx context.Context, id, userId string) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.mutate(id, userId, func(rec *noteRecord) {
		rec.Published = false
		rec.PublishedAt = nil
	})
}

// Delete removes the note by id; absent ids are a no-op.
func (r *noteRepository) Delete(ctx context.Context, id, userId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadNotes()
	if err != nil {
		return err
	}

	filtered := records[:0]
	for _, rec := range records {
		if rec.Id == id && rec.UserId == userId {
			continue
		}
		filtered = append(filtered, rec)
	}
	return r.store.write(keyNotes, filtered)
}

func (r *noteRepository) ListPublished(ctx context.Context) ([]*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}

	published := make([]noteRecord, 0, len(records))
	for _, rec := range records {
		if rec.Published {
			published = append(published, rec)
		}
	}

	// Published-at descending, falling back to updated-at for records that
	// somehow lost their publish timestamp; ties break on updated-at.
	sort.SliceStable(published, func(i, j int) bool {
		ti, tj := publishSortKey(published[i]), publishSortKey(published[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return published[i].UpdatedAt.After(published[j].UpdatedAt)
	})

	return r.hydrate(published)
}

func publishSortKey(rec noteRecord) time.Time {
	if rec.PublishedAt != nil {
		return *rec.PublishedAt
	}
	return rec.UpdatedAt
}

func (r *noteRepository) GetPublished(ctx context.Context, id string) (*entity.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	records, err := r.loadNotes()
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.Id == id && rec.Published {
			categories, err := r.loadCategories()
			if err != nil {
				return nil, err
			}
			return noteToEntity(rec, categories), nil
		}
	}
	return nil, apperror.NotFound("note")
}
