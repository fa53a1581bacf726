package model

// カートの明細1行。
// 価格は整数の通貨単位。Discount は1個あたりの値引き額（0 <= Discount <= Price）。
type CartItem struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	Image             string `json:"image"`
	Price             int64  `json:"price"`
	Discount          int64  `json:"discount"`
	IsClearance       bool   `json:"is_clearance"`
	ClearanceDiscount int64  `json:"clearance_discount"` // パーセント（0..100）。表示用。
	Qty               int64  `json:"qty"`
}

// 値引き後の単価。0未満にはしない。
func (i CartItem) FinalUnitPrice() int64 {
	u := i.Price - i.Discount
	if u < 0 {
		return 0
	}
	return u
}
