package user

import (
	"context"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/user/dto"
)

type UseCase interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, input *dto.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
