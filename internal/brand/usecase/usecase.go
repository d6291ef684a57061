package usecase

import (
	"context"
	"time"

	"github.com/republica/storefront-service/internal/brand"
	"github.com/republica/storefront-service/internal/brand/dto"
	"github.com/republica/storefront-service/internal/category"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/pkg/logger"
)

type brandUseCase struct {
	repo    brand.Repository
	catRepo category.Repository
	logger  logger.ZapLogger
}

func NewBrandUseCase(repo brand.Repository, catRepo category.Repository, log logger.ZapLogger) brand.UseCase {
	return &brandUseCase{
		repo:    repo,
		catRepo: catRepo,
		logger:  log,
	}
}

func (uc *brandUseCase) checkCategory(ctx context.Context, categoryID int64) error {
	cat, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return brand.ErrUnknownCategory
	}
	return nil
}

func (uc *brandUseCase) CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error) {
	if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	b := &model.Brand{
		Name:       input.Name,
		CategoryID: input.CategoryID,
		ImageURL:   input.ImageURL,
		CreatedAt:  time.Now(),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *brandUseCase) GetBrand(ctx context.Context, id int64) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, brand.ErrNotFound
	}
	return b, nil
}

func (uc *brandUseCase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *brandUseCase) UpdateBrand(ctx context.Context, id int64, input *dto.UpdateBrandInput) (*model.Brand, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, brand.ErrNotFound
	}

	if err := uc.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	b.Name = input.Name
	b.CategoryID = input.CategoryID
	b.ImageURL = input.ImageURL

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *brandUseCase) DeleteBrand(ctx context.Context, id int64) error {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return brand.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
