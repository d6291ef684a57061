package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order"
	"github.com/republica/storefront-service/internal/order/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records invalidation calls; the read/write paths are unused here.
type fakeStore struct {
	deleted []string
}

func (f *fakeStore) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (f *fakeStore) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return redis.Nil
}

func (f *fakeStore) DeletePattern(ctx context.Context, pattern string) error {
	f.deleted = append(f.deleted, pattern)
	return nil
}

func (f *fakeStore) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (f *fakeStore) ReleaseLock(ctx context.Context, key, value string) error {
	return nil
}

type fakeRepo struct {
	created      *model.Order
	orders       map[int64]*model.Order
	items        map[int64][]model.OrderItem
	statusCalls  []model.OrderStatus
	updateStatus error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		orders: map[int64]*model.Order{},
		items:  map[int64][]model.OrderItem{},
	}
}

func (f *fakeRepo) Create(ctx context.Context, o *model.Order) error {
	o.ID = 1
	f.created = o
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders[id], nil
}

func (f *fakeRepo) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	return f.items[orderID], nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	out := []model.Order{}
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, target model.OrderStatus) error {
	f.statusCalls = append(f.statusCalls, target)
	return f.updateStatus
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return order.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func TestCreateOrderStartsPending(t *testing.T) {
	repo := newFakeRepo()
	uc := NewOrderUseCase(repo, nil, logger.NewNop())

	o, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName:    "Maria",
		CustomerAddress: "Rua A, 1",
		CustomerPhone:   "+5511999999999",
		TotalAmount:     30.00,
		PaymentMethod:   "pix",
		Items: []dto.OrderItemInput{
			{ProductID: 1, Quantity: 3, PriceAtPurchase: 10.00},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, o.Status)
	assert.Equal(t, "pending", o.PaymentStatus)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(1), o.Items[0].ProductID)
	assert.Equal(t, 3, o.Items[0].Quantity)
	assert.Equal(t, 10.00, o.Items[0].PriceAtPurchase)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewOrderUseCase(repo, nil, logger.NewNop())

	err := uc.ChangeStatus(context.Background(), 1, "delivered")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.Empty(t, repo.statusCalls, "repository must not be reached for an unknown status")
}

func TestChangeStatusPropagatesRepoErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.updateStatus = order.ErrOrderFinalized
	uc := NewOrderUseCase(repo, nil, logger.NewNop())

	err := uc.ChangeStatus(context.Background(), 1, model.StatusCompleted)
	assert.ErrorIs(t, err, order.ErrOrderFinalized)
}

// Completion deducts stock, so the cached product listing must be dropped;
// other transitions leave it alone.
func TestChangeStatusInvalidatesProductCacheOnCompletion(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	uc := NewOrderUseCase(repo, store, logger.NewNop())

	require.NoError(t, uc.ChangeStatus(context.Background(), 1, model.StatusProcessing))
	assert.Empty(t, store.deleted)

	require.NoError(t, uc.ChangeStatus(context.Background(), 1, model.StatusCompleted))
	assert.Equal(t, []string{"products:list:*"}, store.deleted)
}

func TestChangeStatusKeepsCacheWhenTransitionFails(t *testing.T) {
	repo := newFakeRepo()
	repo.updateStatus = order.ErrOrderFinalized
	store := &fakeStore{}
	uc := NewOrderUseCase(repo, store, logger.NewNop())

	err := uc.ChangeStatus(context.Background(), 1, model.StatusCompleted)
	assert.ErrorIs(t, err, order.ErrOrderFinalized)
	assert.Empty(t, store.deleted)
}

func TestGetOrderIncludesItems(t *testing.T) {
	repo := newFakeRepo()
	repo.orders[5] = &model.Order{ID: 5, Status: model.StatusPending}
	repo.items[5] = []model.OrderItem{
		{ID: 1, OrderID: 5, ProductID: 2, Quantity: 1, PriceAtPurchase: 8.50},
	}
	uc := NewOrderUseCase(repo, nil, logger.NewNop())

	o, err := uc.GetOrder(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 8.50, o.Items[0].PriceAtPurchase)
}

func TestGetOrderNotFound(t *testing.T) {
	uc := NewOrderUseCase(newFakeRepo(), nil, logger.NewNop())

	_, err := uc.GetOrder(context.Background(), 99)
	assert.ErrorIs(t, err, order.ErrNotFound)
}
