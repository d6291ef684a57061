package usecase

import (
	"context"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/settings"
	"github.com/republica/storefront-service/internal/settings/dto"
	"github.com/republica/storefront-service/pkg/logger"
)

type settingsUseCase struct {
	repo   settings.Repository
	logger logger.ZapLogger
}

func NewSettingsUseCase(repo settings.Repository, log logger.ZapLogger) settings.UseCase {
	return &settingsUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.StoreSettings, error) {
	return uc.repo.Get(ctx)
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, input *dto.UpdateSettingsInput) (*model.StoreSettings, error) {
	s := &model.StoreSettings{
		StoreName:      input.StoreName,
		LogoURL:        input.LogoURL,
		WhatsappNumber: input.WhatsappNumber,
		Address:        input.Address,
		PixKey:         input.PixKey,
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
