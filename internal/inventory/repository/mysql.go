package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/inventory/dto"
	"github.com/republica/storefront-service/internal/model"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) GetStock(ctx context.Context, productID int64) (int, bool, error) {
	var quantity int
	err := r.DB.GetContext(ctx, &quantity, `SELECT stock_quantity FROM products WHERE id = ?`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return quantity, true, nil
}

// ApplyAdjustment is the operator entry point: the delta is applied without a
// floor guard, so an over-large negative delta can drive the counter below
// zero. The movement row goes in the same transaction so the ledger never
// drifts from the counter.
func (r *MySQLRepository) ApplyAdjustment(ctx context.Context, productID int64, delta int, m *model.StockMovement) (int, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE products SET stock_quantity = stock_quantity + ? WHERE id = ?`, delta, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, sql.ErrNoRows
	}

	insertQuery := `
        INSERT INTO stock_movements (id, product_id, movement_type, quantity_change, quantity_before, quantity_after, reference_type, reference_id, notes, created_at)
        VALUES (:id, :product_id, :movement_type, :quantity_change, :quantity_before, :quantity_after, :reference_type, :reference_id, :notes, :created_at)
    `
	if _, err := tx.NamedExecContext(ctx, insertQuery, m); err != nil {
		return 0, fmt.Errorf("failed to log stock movement: %w", err)
	}

	var quantity int
	if err := tx.GetContext(ctx, &quantity, `SELECT stock_quantity FROM products WHERE id = ?`, productID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return quantity, nil
}

func (r *MySQLRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != 0 {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	movements := []model.StockMovement{}
	err = nstmt.SelectContext(ctx, &movements, args)
	return movements, err
}
