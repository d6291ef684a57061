package usecase

import (
	"context"
	"testing"

	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/user"
	"github.com/republica/storefront-service/internal/user/dto"
	"github.com/republica/storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (f *fakeRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.users, id)
	return nil
}

func seedUser(t *testing.T, repo *fakeRepo, username, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Username: username, PasswordHash: string(hash), Role: model.RoleAdmin}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "admin", "secret123")
	uc := NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())

	u, err := uc.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

// Unknown username and wrong password must be indistinguishable to the caller.
func TestLoginFailsUniformly(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "admin", "secret123")
	uc := NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())

	_, wrongPassword := uc.Login(context.Background(), "admin", "nope")
	_, unknownUser := uc.Login(context.Background(), "ghost", "secret123")

	assert.ErrorIs(t, wrongPassword, user.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, user.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())

	u, err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "manager",
		Password: "secret123",
		Role:     model.RoleSuperAdmin,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestUpdateUserKeepsHashWhenPasswordOmitted(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedUser(t, repo, "admin", "secret123")
	originalHash := seeded.PasswordHash
	uc := NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())

	u, err := uc.UpdateUser(context.Background(), seeded.ID, &dto.UpdateUserInput{
		Username: "admin2",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin2", u.Username)
	assert.Equal(t, originalHash, u.PasswordHash)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	repo := newFakeRepo()
	seeded := seedUser(t, repo, "admin", "secret123")
	originalHash := seeded.PasswordHash
	uc := NewUserUseCase(repo, bcrypt.MinCost, logger.NewNop())

	u, err := uc.UpdateUser(context.Background(), seeded.ID, &dto.UpdateUserInput{
		Username: "admin",
		Password: "newsecret",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newsecret")))
}

func TestUpdateUserNotFound(t *testing.T) {
	uc := NewUserUseCase(newFakeRepo(), bcrypt.MinCost, logger.NewNop())

	_, err := uc.UpdateUser(context.Background(), 99, &dto.UpdateUserInput{
		Username: "ghost",
		Role:     model.RoleAdmin,
	})
	assert.ErrorIs(t, err, user.ErrNotFound)
}
