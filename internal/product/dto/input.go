package dto

type CreateProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	ImageURL      string   `json:"image_url"`
	CategoryID    int64    `json:"category_id" binding:"required"`
	BrandID       int64    `json:"brand_id" binding:"required"`
	StockQuantity int      `json:"stock_quantity" binding:"gte=0"`
	IsAvailable   bool     `json:"is_available"`
}

type UpdateProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	ImageURL      string   `json:"image_url"`
	CategoryID    int64    `json:"category_id" binding:"required"`
	BrandID       int64    `json:"brand_id" binding:"required"`
	StockQuantity int      `json:"stock_quantity" binding:"gte=0"`
	IsAvailable   bool     `json:"is_available"`
}
