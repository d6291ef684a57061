package order

import (
	"context"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ChangeStatus(ctx context.Context, id int64, target model.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
}
