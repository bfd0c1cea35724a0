package models

// Product представляет товар каталога.
// Image1..Image3 — опциональные ссылки на изображения в медиахранилище,
// NULL в базе соответствует nil.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image1      *string `json:"image1"`
	Image2      *string `json:"image2"`
	Image3      *string `json:"image3"`
}
