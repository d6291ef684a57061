package product

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/model"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrUnknownRef   = errors.New("product references an unknown category or brand")
	ErrInvalidPrice = errors.New("product price must not be negative")
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}
