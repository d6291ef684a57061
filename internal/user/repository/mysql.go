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

func (r *MySQLRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (username, password_hash, role)
        VALUES (:username, :password_hash, :role)
    `
	res, err := r.DB.NamedExecContext(ctx, query, u)
	if err != nil {
		return err
	}
	u.ID, err = res.LastInsertId()
	return err
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MySQLRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE username = ? LIMIT 1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.DB.SelectContext(ctx, &users, `SELECT id, username, role FROM users ORDER BY id ASC`)
	return users, err
}

func (r *MySQLRepository) Update(ctx context.Context, u *model.User) error {
	query := `
        UPDATE users
        SET username = :username, password_hash = :password_hash, role = :role
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *MySQLRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}
