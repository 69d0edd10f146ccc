package service

import (
	"context"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/repository/contract"
)

type ICategoryService interface {
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	provider contract.Provider
	logger   logger.ILogger
}

func NewCategoryService(provider contract.Provider, sysLogger logger.ILogger) ICategoryService {
	return &categoryService{
		provider: provider,
		logger:   sysLogger,
	}
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.provider.Categories().List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out, nil
}

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	created, err := s.provider.Categories().Create(ctx, &entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("category", "category created", map[string]interface{}{"category_id": created.Id, "slug": created.Slug})
	res := toCategoryResponse(created)
	return &res, nil
}

func (s *categoryService) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	updated, err := s.provider.Categories().Update(ctx, &entity.Category{
		Id:          req.Id,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		return nil, err
	}

	res := toCategoryResponse(updated)
	return &res, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.provider.Categories().Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category", "category deleted", map[string]interface{}{"category_id": id})
	return nil
}
