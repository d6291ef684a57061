package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/republica/storefront-service/internal/model"
	"github.com/republica/storefront-service/internal/settings"
)

// The settings table holds a single row with id = 1, seeded by migration.
const settingsRowID = 1

type MySQLRepository struct {
	DB *sqlx.DB
}

func NewMySQLRepository(db *sqlx.DB) *MySQLRepository {
	return &MySQLRepository{DB: db}
}

func (r *MySQLRepository) Get(ctx context.Context) (*model.StoreSettings, error) {
	var s model.StoreSettings
	err := r.DB.GetContext(ctx, &s, `SELECT * FROM store_settings WHERE id = ?`, settingsRowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *MySQLRepository) Update(ctx context.Context, s *model.StoreSettings) error {
	s.ID = settingsRowID
	query := `
        UPDATE store_settings
        SET store_name = :store_name, logo_url = :logo_url, whatsapp_number = :whatsapp_number,
            address = :address, pix_key = :pix_key
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, s)
	return err
}
