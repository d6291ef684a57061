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

func (r *MySQLRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (name, icon, image_url, sort_order, created_at)
        VALUES (:name, :icon, :image_url, :sort_order, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, c)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	query := `SELECT * FROM categories WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT * FROM categories ORDER BY sort_order ASC, id ASC`
	err := r.DB.SelectContext(ctx, &categories, query)
	return categories, err
}

func (r *MySQLRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name, icon = :icon, image_url = :image_url, sort_order = :sort_order
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

// Delete removes the category row; brands and products underneath it go with
// it via ON DELETE CASCADE in the schema.
func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	return err
}
