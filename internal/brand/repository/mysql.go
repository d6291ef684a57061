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

func (r *MySQLRepository) Create(ctx context.Context, b *model.Brand) error {
	query := `
        INSERT INTO brands (name, category_id, image_url, created_at)
        VALUES (:name, :category_id, :image_url, :created_at)
    `
	res, err := r.DB.NamedExecContext(ctx, query, b)
	if err != nil {
		return err
	}
	b.ID, err = res.LastInsertId()
	return err
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.Brand, error) {
	var b model.Brand
	query := `SELECT * FROM brands WHERE id = ? LIMIT 1`
	err := r.DB.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.Brand, error) {
	brands := []model.Brand{}
	query := `SELECT * FROM brands ORDER BY id ASC`
	err := r.DB.SelectContext(ctx, &brands, query)
	return brands, err
}

func (r *MySQLRepository) Update(ctx context.Context, b *model.Brand) error {
	query := `
        UPDATE brands
        SET name = :name, category_id = :category_id, image_url = :image_url
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, b)
	return err
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM brands WHERE id = ?`, id)
	return err
}
