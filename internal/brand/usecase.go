package brand

import (
	"context"

	"github.com/republica/storefront-service/internal/brand/dto"
	"github.com/republica/storefront-service/internal/model"
)

type UseCase interface {
	CreateBrand(ctx context.Context, input *dto.CreateBrandInput) (*model.Brand, error)
	GetBrand(ctx context.Context, id int64) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)
	UpdateBrand(ctx context.Context, id int64, input *dto.UpdateBrandInput) (*model.Brand, error)
	DeleteBrand(ctx context.Context, id int64) error
}
