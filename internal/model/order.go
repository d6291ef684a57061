package model

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four known order statuses.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
// Completed and cancelled orders are frozen; re-completing would deduct
// stock a second time.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition encodes the order state machine:
//
//	pending    → processing | completed | cancelled
//	processing → completed | cancelled
//
// No backward transition exists and terminal states have no outgoing edges.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case StatusPending:
		return to == StatusProcessing || to == StatusCompleted || to == StatusCancelled
	case StatusProcessing:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

type Order struct {
	ID              int64       `db:"id" json:"id"`
	CustomerName    string      `db:"customer_name" json:"customer_name"`
	CustomerAddress string      `db:"customer_address" json:"customer_address"`
	CustomerPhone   string      `db:"customer_phone" json:"customer_phone"`
	TotalAmount     float64     `db:"total_amount" json:"total_amount"`
	PaymentMethod   string      `db:"payment_method" json:"payment_method"`
	PaymentType     *string     `db:"payment_type" json:"payment_type"`
	PaymentStatus   string      `db:"payment_status" json:"payment_status"`
	ChangeNeeded    *float64    `db:"change_needed" json:"change_needed"`
	Status          OrderStatus `db:"status" json:"status"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
	Items           []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem freezes product, quantity and price at the moment the order was
// placed. Rows are never updated after creation.
type OrderItem struct {
	ID              int64   `db:"id" json:"id"`
	OrderID         int64   `db:"order_id" json:"order_id"`
	ProductID       int64   `db:"product_id" json:"product_id"`
	Quantity        int     `db:"quantity" json:"quantity"`
	PriceAtPurchase float64 `db:"price_at_purchase" json:"price_at_purchase"`
}
