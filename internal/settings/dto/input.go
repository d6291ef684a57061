package dto

type UpdateSettingsInput struct {
	StoreName      string `json:"store_name" binding:"required"`
	LogoURL        string `json:"logo_url"`
	WhatsappNumber string `json:"whatsapp_number" binding:"required"`
	Address        string `json:"address"`
	PixKey         string `json:"pix_key"`
}
