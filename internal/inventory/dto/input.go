package dto

// AdjustStockInput is the PATCH /api/products/:id/stock body. Quantity is the
// signed delta to apply; a pointer so a missing field is rejected instead of
// read as zero.
type AdjustStockInput struct {
	Quantity *int   `json:"quantity" binding:"required"`
	Notes    string `json:"notes"`
}

type MovementFilters struct {
	ProductID    int64
	MovementType string
	Page         int
	PageSize     int
}
