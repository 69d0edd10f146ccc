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
	"notevault-be/pkg/utils"
)

type categoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func newCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &categoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *categoryRepositoryImpl) List(ctx context.Context) ([]*entity.Category, error) {
	var models []*model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, translate(err, "category")
	}
	return r.mapper.ToEntities(models), nil
}

func (r *categoryRepositoryImpl) Get(ctx context.Context, id string) (*entity.Category, error) {
	var m model.Category
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "category")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *categoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	m := r.mapper.ToModel(category)
	m.Id = uuid.New().String()
	m.Slug = utils.Slugify(m.Name)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "category")
	}
	return r.Get(ctx, m.Id)
}

func (r *categoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.Id).
		Updates(map[string]any{
			"name":        category.Name,
			"slug":        utils.Slugify(category.Name),
			"description": category.Description,
			"color":       category.Color,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, translate(res.Error, "category")
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, "category")
	}
	return r.Get(ctx, category.Id)
}

func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id).Error
	return translate(err, "category")
}
