package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*MySQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMySQLRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestCreateAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).
		WillReturnResult(sqlmock.NewResult(7, 1))

	p := &model.Product{
		Name:          "Pilsen 600ml",
		Price:         8.5,
		CategoryID:    1,
		BrandID:       1,
		StockQuantity: 24,
		IsAvailable:   true,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A price change rewrites the products row and nothing else. Order items
// freeze price_at_purchase at creation, so this is what keeps historical
// orders decoupled from future price changes.
func TestUpdateTouchesOnlyProducts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products")).
		WithArgs("Pilsen 600ml", "", 12.0, "", int64(1), int64(1), 24, true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &model.Product{
		ID:            3,
		Name:          "Pilsen 600ml",
		Price:         12.0,
		CategoryID:    1,
		BrandID:       1,
		StockQuantity: 24,
		IsAvailable:   true,
	}
	require.NoError(t, repo.Update(context.Background(), p))

	// any statement against another table would be an unexpected call
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDUnknownProduct(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM products WHERE id = ?")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, mock.ExpectationsWereMet())
}
