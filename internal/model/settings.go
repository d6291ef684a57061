package model

// StoreSettings is a singleton row (id = 1), updated in place and never
// deleted. The storefront reads it to render contact and payment info.
type StoreSettings struct {
	ID             int64  `db:"id" json:"id"`
	StoreName      string `db:"store_name" json:"store_name"`
	LogoURL        string `db:"logo_url" json:"logo_url"`
	WhatsappNumber string `db:"whatsapp_number" json:"whatsapp_number"`
	Address        string `db:"address" json:"address"`
	PixKey         string `db:"pix_key" json:"pix_key"`
}
