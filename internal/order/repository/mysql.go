package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/order"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, o *model.Order) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO orders (customer_name, customer_address, customer_phone, total_amount, payment_method, payment_type, payment_status, change_needed, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.CustomerName, o.CustomerAddress, o.CustomerPhone, o.TotalAmount,
		o.PaymentMethod, o.PaymentType, o.PaymentStatus, o.ChangeNeeded,
		o.Status, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		res, err := tx.ExecContext(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
            VALUES (?, ?, ?, ?)`,
			item.OrderID, item.ProductID, item.Quantity, item.PriceAtPurchase)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		item.ID, err = res.LastInsertId()
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT * FROM orders WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *MySQLRepository) FindItems(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM order_items WHERE order_id = ? ORDER BY id ASC`, orderID)
	return items, err
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM orders ORDER BY created_at DESC`)
	return orders, err
}

// UpdateStatus is the one place order state and stock are coupled. The order
// row is locked for the duration of the transaction so two concurrent
// completions cannot both pass the state check, and the decrement itself is a
// single conditional UPDATE so two completions of different orders racing on
// the same product cannot drive stock below zero.
func (r *MySQLRepository) UpdateStatus(ctx context.Context, id int64, target model.OrderStatus) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current model.OrderStatus
	err = tx.GetContext(ctx, &current, `SELECT status FROM orders WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return order.ErrNotFound
		}
		return err
	}

	if current.Terminal() {
		return order.ErrOrderFinalized
	}
	if !current.CanTransition(target) {
		return order.ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, target, id); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if target == model.StatusCompleted {
		if err := r.deductStock(ctx, tx, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// deductStock runs the guarded decrement for every item of the order inside
// the caller's transaction. The WHERE stock_quantity >= ? clause is the
// concurrency-safety mechanism: the check and the write are one atomic
// statement at the storage layer.
func (r *MySQLRepository) deductStock(ctx context.Context, tx *sqlx.Tx, orderID int64) error {
	items := []model.OrderItem{}
	if err := tx.SelectContext(ctx, &items,
		`SELECT * FROM order_items WHERE order_id = ?`, orderID); err != nil {
		return err
	}

	now := time.Now()
	refType := "order"
	refID := strconv.FormatInt(orderID, 10)

	for _, item := range items {
		res, err := tx.ExecContext(ctx, `
            UPDATE products
            SET stock_quantity = stock_quantity - ?
            WHERE id = ? AND stock_quantity >= ?`,
			item.Quantity, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to deduct stock: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return &order.InsufficientStockError{ProductID: item.ProductID}
		}

		var after int
		if err := tx.GetContext(ctx, &after,
			`SELECT stock_quantity FROM products WHERE id = ?`, item.ProductID); err != nil {
			return err
		}

		movement := &model.StockMovement{
			ID:             uuid.New().String(),
			ProductID:      item.ProductID,
			MovementType:   model.MovementSale,
			QuantityChange: -item.Quantity,
			QuantityBefore: after + item.Quantity,
			QuantityAfter:  after,
			ReferenceType:  &refType,
			ReferenceID:    &refID,
			Notes:          "order completion",
			CreatedAt:      now,
		}
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO stock_movements (id, product_id, movement_type, quantity_change, quantity_before, quantity_after, reference_type, reference_id, notes, created_at)
            VALUES (:id, :product_id, :movement_type, :quantity_change, :quantity_before, :quantity_after, :reference_type, :reference_id, :notes, :created_at)`,
			movement); err != nil {
			return fmt.Errorf("failed to log sale movement: %w", err)
		}
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete order items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return order.ErrNotFound
	}

	return tx.Commit()
}
