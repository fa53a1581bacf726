package model

// 注文の届け先。チェックアウト時に本文で受け取る。
type Address struct {
	Recipient   string `json:"recipient" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	AddressLine string `json:"address_line" validate:"required"`
	Note        string `json:"note"`
}
