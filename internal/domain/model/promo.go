package model

type PromoType string

const (
	PromoTypePercent PromoType = "percent"
	PromoTypeFixed   PromoType = "fixed"
)

// 適用中のプロモコード。検証はプロモサービス側が行う。
// 同時に有効なのは1つだけ（重ね掛けなし）。
type AppliedPromo struct {
	Code        string    `json:"code"`
	Type        PromoType `json:"type"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
}
