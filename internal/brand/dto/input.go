package dto

type CreateBrandInput struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID int64   `json:"category_id" binding:"required"`
	ImageURL   *string `json:"image_url"`
}

type UpdateBrandInput struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID int64   `json:"category_id" binding:"required"`
	ImageURL   *string `json:"image_url"`
}
