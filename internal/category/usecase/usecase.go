package usecase

import (
	"context"
	"time"

	"github.com/republica/storefront-service/internal/category"
	"github.com/republica/storefront-service/internal/category/dto"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	c := &model.Category{
		Name:      input.Name,
		Icon:      input.Icon,
		ImageURL:  input.ImageURL,
		SortOrder: input.SortOrder,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, category.ErrNotFound
	}
	return c, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, input *dto.UpdateCategoryInput) (*model.Category, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, category.ErrNotFound
	}

	c.Name = input.Name
	c.Icon = input.Icon
	c.ImageURL = input.ImageURL
	c.SortOrder = input.SortOrder

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return category.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
