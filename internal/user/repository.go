package user

import (
	"context"
	"errors"

	"github.com/republica/storefront-service/internal/model"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so login failures never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}
