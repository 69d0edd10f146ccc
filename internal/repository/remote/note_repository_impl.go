package remote

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notevault-be/internal/entity"
	"notevault-be/internal/mapper"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/contract"
)

type noteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func newNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &noteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

// withJoins hydrates a note query with its link rows and each link's
// category in one round trip.
func (r *noteRepositoryImpl) withJoins(db *gorm.DB) *gorm.DB {
	return db.Preload("NoteCategories.Category")
}

func (r *noteRepositoryImpl) fetch(ctx context.Context, id string) (*entity.Note, error) {
	var m model.Note
	err := r.withJoins(r.db.WithContext(ctx)).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *noteRepositoryImpl) ListByUser(ctx context.Context, userId string) ([]*entity.Note, error) {
	var models []*model.Note
	err := r.withJoins(r.db.WithContext(ctx)).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.mapper.ToEntities(models), nil
}

func (r *noteRepositoryImpl) Get(ctx context.Context, id, userId string) (*entity.Note, error) {
	var m model.Note
	err := r.withJoins(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userId).
		First(&m).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *noteRepositoryImpl) Create(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	m := r.mapper.ToModel(note)
	m.Id = uuid.New().String()
	m.Published = false
	m.PublishedAt = nil

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "note")
	}
	return r.fetch(ctx, m.Id)
}

func (r *noteRepositoryImpl) Update(ctx context.Context, note *entity.Note) (*entity.Note, error) {
	res := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND user_id = ?", note.Id, note.UserId).
		Updates(map[string]any{
			"title":       note.Title,
			"content":     note.Content,
			"category_id": note.CategoryId,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, "note")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "note")
	}
	return r.fetch(ctx, note.Id)
}

// SetCategories rewrites the note's link set: scalar touch, delete existing
// links, bulk-insert the new set. The three writes run in one transaction so
// a failure can never strand the note with a partially rewritten set; the
// authoritative shape is re-fetched with joins afterwards.
func (r *noteRepositoryImpl) SetCategories(ctx context.Context, id, userId string, categoryIds []string) (*entity.Note, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Note{}).
			Where("id = ? AND user_id = ?", id, userId).
			Update("updated_at", time.Now().UTC())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("note_id = ?", id).Delete(&model.NoteCategory{}).Error; err != nil {
			return err
		}

		if len(categoryIds) == 0 {
			return nil
		}

		links := make([]model.NoteCategory, 0, len(categoryIds))
		seen := make(map[string]bool, len(categoryIds))
		for _, cid := range categoryIds {
			if seen[cid] {
				continue
			}
			seen[cid] = true
			links = append(links, model.NoteCategory{
				Id:         uuid.New().String(),
				NoteId:     id,
				CategoryId: cid,
			})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.fetch(ctx, id)
}

func (r *noteRepositoryImpl) setPublished(ctx context.Context, id, userId string, publishedAt *time.Time) (*entity.Note, error) {
	res := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND user_id = ?", id, userId).
		Updates(map[string]any{
			"published":    publishedAt != nil,
			"published_at": publishedAt,
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, "note")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "note")
	}
	return r.fetch(ctx, id)
}

func (r *noteRepositoryImpl) Publish(ctx context.Context, id, userId string) (*entity.Note, error) {
	now := time.Now().UTC()
	return r.setPublished(ctx, id, userId, &now)
}

func (r *noteRepositoryImpl) Unpublish(ctx context.Context, id, userId string) (*entity.Note, error) {
	return r.setPublished(ctx, id, userId, nil)
}

// Delete removes the note row; its link rows cascade at the backend.
func (r *noteRepositoryImpl) Delete(ctx context.Context, id, userId string) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.Note{}).Error
	return translate(err, "note")
}

func (r *noteRepositoryImpl) ListPublished(ctx context.Context) ([]*entity.Note, error) {
	var models []*model.Note
	// Filtering and ordering are pushed down to the backend, unlike the
	// local store which sorts client-side.
	err := r.withJoins(r.db.WithContext(ctx)).
		Where("published = ?", true).
		Order("published_at DESC, updated_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.mapper.ToEntities(models), nil
}

func (r *noteRepositoryImpl) GetPublished(ctx context.Context, id string) (*entity.Note, error) {
	var m model.Note
	err := r.withJoins(r.db.WithContext(ctx)).
		Where("id = ? AND published = ?", id, true).
		First(&m).Error
	if err != nil {
		return nil, translate(err, "note")
	}
	return r.mapper.ToEntity(&m), nil
}
