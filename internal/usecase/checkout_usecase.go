package usecase

import (
	"context"

	"app/internal/cart"
	"app/internal/domain/model"
	"app/internal/pricing"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CheckoutUsecase は注文確定の組み立てと送信だけを受け持つ。
// 状態は持たない。カート状態は呼び出し時点のスナップショットで受け取る。
type CheckoutUsecase struct {
	orders   service.OrderService
	validate *validator.Validate
	newID    func() string
}

func NewCheckoutUsecase(orders service.OrderService) *CheckoutUsecase {
	return &CheckoutUsecase{
		orders:   orders,
		validate: validator.New(),
		newID:    uuid.NewString,
	}
}

// 届け先の必須項目チェック。ここで落ちればネットワークには出ない。
func (u *CheckoutUsecase) ValidateAddress(addr model.Address) error {
	if err := u.validate.Struct(addr); err != nil {
		return NewValidationError("recipient, phone and address_line are required")
	}
	return nil
}

// Submit は送信時点の選択明細と金額でペイロードを作って注文サービスへ送る。
// 金額は参考値で、サーバー側が再計算する前提。
func (u *CheckoutUsecase) Submit(ctx context.Context, st cart.State, addr model.Address, cfg pricing.Config) (model.OrderResult, error) {
	selected := st.SelectedItems()
	items := make([]model.CheckoutItem, 0, len(selected))
	for _, it := range selected {
		items = append(items, model.CheckoutItem{ProductID: it.ProductID, Qty: it.Qty})
	}

	var promoCode *string
	if st.AppliedPromo != nil {
		code := st.AppliedPromo.Code
		promoCode = &code
	}

	payload := model.CheckoutPayload{
		Items:          items,
		Address:        addr,
		ShippingOption: st.ShippingOption,
		PromoCode:      promoCode,
		Totals:         pricing.Quote(st.Items, st.Selected, st.ShippingOption, st.AppliedPromo, cfg),
		IdempotencyKey: u.newID(),
	}

	return u.orders.Checkout(ctx, payload)
}
