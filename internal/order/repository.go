package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/republica/storefront-service/internal/model"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrOrderFinalized guards the terminal states: a completed order must not
	// be completed again (stock would be deducted twice) and a cancelled order
	// stays cancelled.
	ErrOrderFinalized = errors.New("order is already completed or cancelled")

	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidStatus     = errors.New("unknown order status")
)

// InsufficientStockError aborts a completion transition when a product cannot
// cover its ordered quantity. The whole transaction rolls back.
type InsufficientStockError struct {
	ProductID int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

type Repository interface {
	// Create inserts the order row and all item rows in one transaction.
	Create(ctx context.Context, o *model.Order) error

	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	FindAll(ctx context.Context) ([]model.Order, error)

	// UpdateStatus runs the full transition transaction: it locks the order
	// row, checks the state machine, updates the status and, for a completed
	// target, performs the guarded stock decrement per item. Any failure
	// rolls everything back.
	UpdateStatus(ctx context.Context, id int64, target model.OrderStatus) error

	// Delete removes the items and the order atomically. No stock is
	// restored; deletion is an administrative removal, not a cancellation.
	Delete(ctx context.Context, id int64) error
}
