package inventory

import (
	"context"

	"github.com/republica/storefront-service/internal/inventory/dto"
	"github.com/republica/storefront-service/internal/model"
)

type UseCase interface {
	AdjustStock(ctx context.Context, productID int64, input *dto.AdjustStockInput) (int, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.StockMovement, error)
}
