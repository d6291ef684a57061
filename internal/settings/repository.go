package settings

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/model"
)

var ErrNotFound = errors.New("store settings not found")

type Repository interface {
	Get(ctx context.Context) (*model.StoreSettings, error)
	Update(ctx context.Context, s *model.StoreSettings) error
}
