package usecase

import (
	"context"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/user"
	"github.com/republica/storefront-service/internal/user/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userUseCase struct {
	repo       user.Repository
	bcryptCost int
	logger     logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, bcryptCost int, log logger.ZapLogger) user.UseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userUseCase{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

// Login compares the supplied password against the stored bcrypt hash. An
// unknown username and a wrong password produce the same error.
func (uc *userUseCase) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	uc.logger.Info("user logged in", zap.String("username", u.Username))
	return u, nil
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *userUseCase) UpdateUser(ctx context.Context, id int64, input *dto.UpdateUserInput) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}

	u.Username = input.Username
	u.Role = input.Role
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
