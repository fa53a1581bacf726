package storeapi

import "app/internal/domain/model"

func checkoutPayloadFixture() model.CheckoutPayload {
	return model.CheckoutPayload{
		Items: []model.CheckoutItem{{ProductID: "p1", Qty: 2}},
		Address: model.Address{
			Recipient:   "山田太郎",
			Phone:       "090-0000-0000",
			AddressLine: "東京都千代田区1-1",
		},
		ShippingOption: model.ShippingStandard,
		Totals: model.Totals{
			Subtotal:    200000,
			ShippingFee: 30000,
			GrandTotal:  230000,
		},
		IdempotencyKey: "key-1",
	}
}
