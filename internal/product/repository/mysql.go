package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/model"
)

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (name, description, price, image_url, category_id, brand_id, stock_quantity, is_available, created_at)
        VALUES (:name, :description, :price, :image_url, :category_id, :brand_id, :stock_quantity, :is_available, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products ORDER BY id ASC`
	err := r.DB.SelectContext(ctx, &products, query)
	return products, err
}

// Update rewrites every mutable column, stock included. Order completion does
// not go through here; it uses the guarded decrement in the order repository.
func (r *MySQLRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name, description = :description, price = :price, image_url = :image_url,
            category_id = :category_id, brand_id = :brand_id, stock_quantity = :stock_quantity,
            is_available = :is_available
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
