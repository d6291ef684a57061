package brand

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/model"
)

var (
	ErrNotFound        = errors.New("brand not found")
	ErrUnknownCategory = errors.New("brand references an unknown category")
)

type Repository interface {
	Create(ctx context.Context, b *model.Brand) error
	FindByID(ctx context.Context, id int64) (*model.Brand, error)
	FindAll(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, b *model.Brand) error
	Delete(ctx context.Context, id int64) error
}
