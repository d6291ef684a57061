package dto

type OrderItemInput struct {
	ProductID       int64   `json:"product_id" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,gt=0"`
	PriceAtPurchase float64 `json:"price_at_purchase" binding:"gte=0"`
}

type CreateOrderInput struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerAddress string           `json:"customer_address" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	TotalAmount     float64          `json:"total_amount" binding:"gte=0"`
	PaymentMethod   string           `json:"payment_method" binding:"required"`
	PaymentType     *string          `json:"payment_type"`
	PaymentStatus   string           `json:"payment_status"`
	ChangeNeeded    *float64         `json:"change_needed"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type ChangeStatusInput struct {
	Status string `json:"status" binding:"required"`
}
