package inventory

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/inventory/dto"
	"github.com/republica/storefront-service/internal/model"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBusy            = errors.New("stock is being adjusted by another operation, try again")
)

type Repository interface {
	// GetStock returns the current stock counter; found is false when the
	// product does not exist.
	GetStock(ctx context.Context, productID int64) (quantity int, found bool, err error)

	// ApplyAdjustment writes the unguarded delta and the audit movement in a
	// single transaction and returns the resulting quantity.
	ApplyAdjustment(ctx context.Context, productID int64, delta int, m *model.StockMovement) (int, error)

	ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, error)
}
