package category

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/model"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id int64) error
}
