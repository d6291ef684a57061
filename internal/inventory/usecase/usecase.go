package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/republica/storefront-service/internal/inventory"
	"github.com/republica/storefront-service/internal/inventory/dto"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/pkg/cache"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	lockTTL        = 5 * time.Second
	lockRetries    = 3
	lockRetryDelay = 100 * time.Millisecond

	productListCachePattern = "products:list:*"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, c cache.Store, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

// AdjustStock applies an operator-driven signed delta. The delta itself is
// unguarded, but a per-product lock serializes the read-adjust-log sequence so
// the movement row's before/after pair stays accurate under concurrent
// operators.
func (uc *inventoryUseCase) AdjustStock(ctx context.Context, productID int64, input *dto.AdjustStockInput) (int, error) {
	if uc.cache != nil {
		lockKey := fmt.Sprintf("lock:stock:%d", productID)
		lockValue := uuid.New().String()

		acquired := false
		for i := 0; i < lockRetries; i++ {
			ok, err := uc.cache.AcquireLock(ctx, lockKey, lockValue, lockTTL)
			if err != nil {
				uc.logger.Error("stock lock acquire failed", zap.Error(err))
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(lockRetryDelay)
		}
		if !acquired {
			return 0, inventory.ErrBusy
		}
		defer uc.cache.ReleaseLock(ctx, lockKey, lockValue)
	}

	before, found, err := uc.repo.GetStock(ctx, productID)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, inventory.ErrProductNotFound
	}

	delta := *input.Quantity
	movement := &model.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      productID,
		MovementType:   model.MovementAdjustment,
		QuantityChange: delta,
		QuantityBefore: before,
		QuantityAfter:  before + delta,
		Notes:          input.Notes,
		CreatedAt:      time.Now(),
	}

	newQuantity, err := uc.repo.ApplyAdjustment(ctx, productID, delta, movement)
	if err != nil {
		return 0, err
	}

	if uc.cache != nil {
		if err := uc.cache.DeletePattern(ctx, productListCachePattern); err != nil {
			uc.logger.Warn("product list cache invalidation failed", zap.Error(err))
		}
	}

	return newQuantity, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error) {
	return uc.repo.ListMovements(ctx, filters)
}
