package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order"
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

func itemRows(items ...model.OrderItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price_at_purchase"})
	for _, it := range items {
		rows.AddRow(it.ID, it.OrderID, it.ProductID, it.Quantity, it.PriceAtPurchase)
	}
	return rows
}

func TestCreateInsertsOrderAndItemsAtomically(t *testing.T) {
	repo, mock := newMockRepo(t)

	o := &model.Order{
		CustomerName:    "Maria",
		CustomerAddress: "Rua A, 1",
		CustomerPhone:   "+5511999999999",
		TotalAmount:     30.00,
		PaymentMethod:   "pix",
		PaymentStatus:   "pending",
		Status:          model.StatusPending,
		CreatedAt:       time.Now(),
		Items: []model.OrderItem{
			{ProductID: 1, Quantity: 3, PriceAtPurchase: 10.00},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WithArgs(int64(42), int64(1), 3, 10.00).
		WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, int64(42), o.ID)
	assert.Equal(t, int64(42), o.Items[0].OrderID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRollsBackWhenItemInsertFails(t *testing.T) {
	repo, mock := newMockRepo(t)

	o := &model.Order{
		Status: model.StatusPending,
		Items: []model.OrderItem{
			{ProductID: 1, Quantity: 1, PriceAtPurchase: 5.00},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), o)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCompletedDeductsStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = ? WHERE id = ?")).
		WithArgs("completed", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM order_items WHERE order_id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(itemRows(model.OrderItem{ID: 1, OrderID: 7, ProductID: 1, Quantity: 3, PriceAtPurchase: 10.00}))
	mock.ExpectExec("UPDATE products").
		WithArgs(3, int64(1), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock_quantity FROM products WHERE id = ?")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(2))
	mock.ExpectExec("INSERT INTO stock_movements").
		WithArgs(sqlmock.AnyArg(), int64(1), "sale", -3, 5, 2, "order", "7", "order completion", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, model.StatusCompleted)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRollsBackOnInsufficientStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = ? WHERE id = ?")).
		WithArgs("completed", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM order_items WHERE order_id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(itemRows(model.OrderItem{ID: 1, OrderID: 7, ProductID: 1, Quantity: 3, PriceAtPurchase: 10.00}))
	// Guarded decrement matches zero rows: only 2 in stock for a quantity of 3.
	mock.ExpectExec("UPDATE products").
		WithArgs(3, int64(1), 3).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), 7, model.StatusCompleted)
	require.Error(t, err)

	var stockErr *order.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(1), stockErr.ProductID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsCompletedOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), 7, model.StatusCompleted)
	assert.ErrorIs(t, err, order.ErrOrderFinalized)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsBackwardTransition(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("processing"))
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), 7, model.StatusPending)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), 99, model.StatusProcessing)
	assert.ErrorIs(t, err, order.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusCancelledSkipsStock(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM orders WHERE id = ? FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = ? WHERE id = ?")).
		WithArgs("cancelled", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), 7, model.StatusCancelled)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRemovesItemsThenOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM order_items WHERE order_id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnknownOrder(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM order_items WHERE order_id = ?")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, order.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
