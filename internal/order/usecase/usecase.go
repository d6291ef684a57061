package usecase

import (
	"context"
	"time"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order"
	"github.com/republica/storefront-service/internal/order/dto"
	"github.com/republica/storefront-service/pkg/cache"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const productListCachePattern = "products:list:*"

type orderUseCase struct {
	repo   order.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, c cache.Store, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		cache:  c,
		logger: log,
	}
}

// CreateOrder persists the order and its items all-or-nothing. Stock is not
// touched here; inventory only moves at the completion transition.
func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "pending"
	}

	o := &model.Order{
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerPhone:   input.CustomerPhone,
		TotalAmount:     input.TotalAmount,
		PaymentMethod:   input.PaymentMethod,
		PaymentType:     input.PaymentType,
		PaymentStatus:   paymentStatus,
		ChangeNeeded:    input.ChangeNeeded,
		Status:          model.StatusPending,
		CreatedAt:       time.Now(),
	}
	for _, item := range input.Items {
		o.Items = append(o.Items, model.OrderItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.Int64("order_id", o.ID), zap.Int("items", len(o.Items)))
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrNotFound
	}

	items, err := uc.repo.FindItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *orderUseCase) ChangeStatus(ctx context.Context, id int64, target model.OrderStatus) error {
	if !model.ValidStatus(target) {
		return order.ErrInvalidStatus
	}

	if err := uc.repo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	uc.logger.Info("order status changed",
		zap.Int64("order_id", id), zap.String("status", string(target)))

	// Completion deducted stock, so cached product listings are stale.
	if target == model.StatusCompleted && uc.cache != nil {
		if err := uc.cache.DeletePattern(ctx, productListCachePattern); err != nil {
			uc.logger.Warn("product list cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
