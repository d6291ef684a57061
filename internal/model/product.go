package model

import "time"

type Product struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	Price         float64   `db:"price" json:"price"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	CategoryID    int64     `db:"category_id" json:"category_id"`
	BrandID       int64     `db:"brand_id" json:"brand_id"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	IsAvailable   bool      `db:"is_available" json:"is_available"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// StockMovement is the audit row written for every stock mutation, whether a
// manual adjustment or an order completion sale.
type StockMovement struct {
	ID             string    `db:"id" json:"id"`
	ProductID      int64     `db:"product_id" json:"product_id"`
	MovementType   string    `db:"movement_type" json:"movement_type"`
	QuantityChange int       `db:"quantity_change" json:"quantity_change"`
	QuantityBefore int       `db:"quantity_before" json:"quantity_before"`
	QuantityAfter  int       `db:"quantity_after" json:"quantity_after"`
	ReferenceType  *string   `db:"reference_type" json:"reference_type"`
	ReferenceID    *string   `db:"reference_id" json:"reference_id"`
	Notes          string    `db:"notes" json:"notes"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

const (
	MovementAdjustment = "adjustment"
	MovementSale       = "sale"
)
