package dto

type CreateCategoryInput struct {
	Name      string  `json:"name" binding:"required"`
	Icon      *string `json:"icon"`
	ImageURL  *string `json:"image_url"`
	SortOrder int     `json:"order"`
}

type UpdateCategoryInput struct {
	Name      string  `json:"name" binding:"required"`
	Icon      *string `json:"icon"`
	ImageURL  *string `json:"image_url"`
	SortOrder int     `json:"order"`
}
