package settings

import (
	"context"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/settings/dto"
)

type UseCase interface {
	GetSettings(ctx context.Context) (*model.StoreSettings, error)
	UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.StoreSettings, error)
}
