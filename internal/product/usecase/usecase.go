package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/republica/storefront-service/internal/brand"
	"github.com/republica/storefront-service/internal/category"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/product"
	"github.com/republica/storefront-service/internal/product/dto"
	"github.com/republica/storefront-service/pkg/cache"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	listCacheKey     = "products:list:all"
	listCachePattern = "products:list:*"
	listCacheTTL     = 5 * time.Minute
)

type productUseCase struct {
	repo      product.Repository
	catRepo   category.Repository
	brandRepo brand.Repository
	cache     cache.Store
	logger    logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, catRepo category.Repository, brandRepo brand.Repository, c cache.Store, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		catRepo:   catRepo,
		brandRepo: brandRepo,
		cache:     c,
		logger:    log,
	}
}

func (uc *productUseCase) checkRefs(ctx context.Context, categoryID, brandID int64) error {
	cat, err := uc.catRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return product.ErrUnknownRef
	}

	b, err := uc.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return err
	}
	if b == nil {
		return product.ErrUnknownRef
	}
	return nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if *input.Price < 0 {
		return nil, product.ErrInvalidPrice
	}
	if err := uc.checkRefs(ctx, input.CategoryID, input.BrandID); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         *input.Price,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		BrandID:       input.BrandID,
		StockQuantity: input.StockQuantity,
		IsAvailable:   input.IsAvailable,
		CreatedAt:     time.Now(),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}
	return p, nil
}

// ListProducts serves from the redis cache when possible; the DB result is
// cached for a short TTL and every product mutation invalidates it.
func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	if uc.cache != nil {
		var cached []model.Product
		err := uc.cache.GetJSON(ctx, listCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("product list cache read failed", zap.Error(err))
		}
	}

	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, listCacheKey, products, listCacheTTL); err != nil {
			uc.logger.Warn("product list cache write failed", zap.Error(err))
		}
	}
	return products, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	if *input.Price < 0 {
		return nil, product.ErrInvalidPrice
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, product.ErrNotFound
	}

	if err := uc.checkRefs(ctx, input.CategoryID, input.BrandID); err != nil {
		return nil, err
	}

	p.Name = input.Name
	p.Description = input.Description
	p.Price = *input.Price
	p.ImageURL = input.ImageURL
	p.CategoryID = input.CategoryID
	p.BrandID = input.BrandID
	p.StockQuantity = input.StockQuantity
	p.IsAvailable = input.IsAvailable

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateListCache(ctx)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return product.ErrNotFound
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateListCache(ctx)
	return nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, listCachePattern); err != nil {
		uc.logger.Warn("product list cache invalidation failed", zap.Error(err))
	}
}
