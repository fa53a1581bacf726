package model

import "fmt"

type ShippingOption string

const (
	ShippingExpress  ShippingOption = "express"
	ShippingStandard ShippingOption = "standard"
	ShippingEconomy  ShippingOption = "economy"
	ShippingFree     ShippingOption = "free"
)

// 配送オプションの列挙チェックのみ（それ以上の検証はしない）。
func ParseShippingOption(s string) (ShippingOption, error) {
	switch ShippingOption(s) {
	case ShippingExpress, ShippingStandard, ShippingEconomy, ShippingFree:
		return ShippingOption(s), nil
	default:
		return "", fmt.Errorf("unknown shipping option: %q", s)
	}
}
