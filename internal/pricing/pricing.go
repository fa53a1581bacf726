// Package pricing は選択中の明細から金額内訳を導出します。
// 純粋関数のみで、呼び出し間で何も覚えません（カートは高々数十行なので毎回計算で足ります）。
//
// クリアランス品の扱い: 値引きは明細の Discount（1個あたりの値引き額）だけを見ます。
// ClearanceDiscount のパーセントは表示用メタデータで、ここでは使いません。
package pricing

import (
	"math"

	"app/internal/domain/model"
)

// 配送料テーブル。ハードコードせず設定として渡す。
type Config struct {
	Fees map[model.ShippingOption]int64
}

// 既定の配送料。
func DefaultConfig() Config {
	return Config{
		Fees: map[model.ShippingOption]int64{
			model.ShippingExpress:  50000,
			model.ShippingStandard: 30000,
			model.ShippingEconomy:  15000,
			model.ShippingFree:     0,
		},
	}
}

// 未知のオプションは0円。
func (c Config) Fee(opt model.ShippingOption) int64 {
	return c.Fees[opt]
}

// Quote は金額内訳を計算する。
//   - 小計: 選択中の明細のみ。単価は max(0, price-discount)。
//   - 値引き: percent は round(小計*value/100)、fixed は value そのまま
//     （表示上の値引き額は小計で切り詰めない）。
//   - 合計: max(0, 小計+配送料-値引き)。クランプはここだけ。
func Quote(items []model.CartItem, selected model.Selection, opt model.ShippingOption, promo *model.AppliedPromo, cfg Config) model.Totals {
	var subtotal int64
	for _, it := range items {
		if !selected.Has(it.ProductID) {
			continue
		}
		subtotal += it.FinalUnitPrice() * it.Qty
	}

	fee := cfg.Fee(opt)

	var discount int64
	if promo != nil {
		switch promo.Type {
		case model.PromoTypePercent:
			discount = int64(math.Round(float64(subtotal) * promo.Value / 100))
		case model.PromoTypeFixed:
			discount = int64(math.Round(promo.Value))
		}
		if discount < 0 {
			discount = 0
		}
	}

	grand := subtotal + fee - discount
	if grand < 0 {
		grand = 0
	}

	return model.Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Discount:    discount,
		GrandTotal:  grand,
	}
}
