package model

// 金額の内訳。毎回再計算する派生値で、どこにも保持しない。
// すべて0以上の整数通貨単位。
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	Discount    int64 `json:"discount"`
	GrandTotal  int64 `json:"grand_total"`
}
