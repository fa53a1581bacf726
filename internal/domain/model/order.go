package model

// 注文に載せる明細（選択中の行だけ）。
type CheckoutItem struct {
	ProductID string `json:"product_id"`
	Qty       int64  `json:"qty"`
}

// 注文サービスへ送るペイロード。
// 金額はクライアント計算の参考値で、サーバー側が再計算する前提。
// IdempotencyKey は同じ注文の二重作成を防ぐ（同じキーなら同じ結果）。
type CheckoutPayload struct {
	Items          []CheckoutItem `json:"items"`
	Address        Address        `json:"address"`
	ShippingOption ShippingOption `json:"shipping_option"`
	PromoCode      *string        `json:"promo_code"`
	Totals         Totals         `json:"totals"`
	IdempotencyKey string         `json:"idempotency_key"`
}

type OrderResult struct {
	OrderID string `json:"order_id"`
}
