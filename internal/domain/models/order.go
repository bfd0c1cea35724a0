package models

import "encoding/json"

// Order представляет заказ, созданный при оформлении корзины.
// Cart хранится как JSONB и отдается наружу как есть (json.RawMessage),
// чтобы массив позиций проходил round-trip байт-в-байт. Корзина — это
// замороженный снимок на момент заказа, ссылочной целостности с товарами нет.
type Order struct {
	ID        int64           `json:"id"`
	FirstName string          `json:"first"`
	LastName  string          `json:"second"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	Building  string          `json:"building"`
	Apartment string          `json:"apartment"`
	Cart      json.RawMessage `json:"cart"`
}
