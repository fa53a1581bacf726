package usecase

import (
	"context"
	"strings"
	"sync"

	"app/internal/cart"
	"app/internal/domain/model"
	"app/internal/pricing"
	"app/internal/service"
)

// CartUsecase は1セッション分のカート状態の唯一の持ち主です。
// 状態の変更はすべて cart.Reduce を通し、外部呼び出しの前に Begin、
// 成否どちらでも End / Fail で必ず Loading を戻します。
// 操作はmutexで直列化し、load と checkout はカテゴリごとに多重実行を拒否します。
type CartUsecase struct {
	cartSvc  service.CartService
	promoSvc service.PromoService
	checkout *CheckoutUsecase
	pricing  pricing.Config

	mu               sync.Mutex
	state            cart.State
	loadInFlight     bool
	checkoutInFlight bool
}

func NewCartUsecase(
	cartSvc service.CartService,
	promoSvc service.PromoService,
	checkout *CheckoutUsecase,
	pricingCfg pricing.Config,
) *CartUsecase {
	return &CartUsecase{
		cartSvc:  cartSvc,
		promoSvc: promoSvc,
		checkout: checkout,
		pricing:  pricingCfg,
		state:    cart.NewState(),
	}
}

// UIへ返すスナップショット。金額は毎回 pricing.Quote で導出する。
type CartSnapshot struct {
	Items          []model.CartItem     `json:"items"`
	SelectedIDs    []string             `json:"selected_ids"`
	ShippingOption model.ShippingOption `json:"shipping_option"`
	AppliedPromo   *model.AppliedPromo  `json:"applied_promo"`
	Totals         model.Totals         `json:"totals"`
	Loading        bool                 `json:"loading"`
	Error          string               `json:"error,omitempty"`
}

func (u *CartUsecase) Snapshot() CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked()
}

func (u *CartUsecase) snapshotLocked() CartSnapshot {
	s := u.state
	return CartSnapshot{
		Items:          s.Items,
		SelectedIDs:    s.Selected.IDs(),
		ShippingOption: s.ShippingOption,
		AppliedPromo:   s.AppliedPromo,
		Totals:         pricing.Quote(s.Items, s.Selected, s.ShippingOption, s.AppliedPromo, u.pricing),
		Loading:        s.Loading,
		Error:          s.Err,
	}
}

// Load はバックエンドから全明細を取り直す。
// 成功したら明細を置き換えて選択を全明細にリセットする。
func (u *CartUsecase) Load(ctx context.Context) (CartSnapshot, error) {
	u.mu.Lock()
	if u.loadInFlight {
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return snap, NewConflictError("cart load already in progress")
	}
	u.loadInFlight = true
	u.state = cart.Reduce(u.state, cart.Begin{})
	u.mu.Unlock()

	items, err := u.cartSvc.GetCart(ctx)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.loadInFlight = false
	if err != nil {
		u.state = cart.Reduce(u.state, cart.Fail{Message: remoteMessage(err)})
		return u.snapshotLocked(), NewRemoteError(err)
	}
	u.state = cart.Reduce(u.state, cart.Loaded{Items: items})
	u.state = cart.Reduce(u.state, cart.End{})
	return u.snapshotLocked(), nil
}

// UpdateQty は数量を変更する。qty < 1 は事前条件違反。
// 明細に無いIDはローカルの何もしない扱い（ネットワークにも出さない）。
func (u *CartUsecase) UpdateQty(ctx context.Context, productID string, qty int64) (CartSnapshot, error) {
	if qty < 1 {
		return u.Snapshot(), NewValidationError("quantity must be at least 1")
	}

	u.mu.Lock()
	if !u.state.HasItem(productID) {
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return snap, nil
	}
	u.state = cart.Reduce(u.state, cart.Begin{})
	u.mu.Unlock()

	err := u.cartSvc.UpdateItemQty(ctx, productID, qty)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.state = cart.Reduce(u.state, cart.Fail{Message: remoteMessage(err)})
		return u.snapshotLocked(), NewRemoteError(err)
	}
	u.state = cart.Reduce(u.state, cart.QtyUpdated{ProductID: productID, Qty: qty})
	u.state = cart.Reduce(u.state, cart.End{})
	return u.snapshotLocked(), nil
}

// RemoveItems は複数明細を削除する。1件なら単体API、2件以上なら一括API
// （最適化であって意味は同じ）。ローカル更新は成功時にまとめて1回。
func (u *CartUsecase) RemoveItems(ctx context.Context, productIDs []string) (CartSnapshot, error) {
	if len(productIDs) == 0 {
		return u.Snapshot(), NewValidationError("no items to remove")
	}

	u.mu.Lock()
	u.state = cart.Reduce(u.state, cart.Begin{})
	u.mu.Unlock()

	var err error
	if len(productIDs) == 1 {
		err = u.cartSvc.RemoveItem(ctx, productIDs[0])
	} else {
		err = u.cartSvc.BulkRemove(ctx, productIDs)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.state = cart.Reduce(u.state, cart.Fail{Message: remoteMessage(err)})
		return u.snapshotLocked(), NewRemoteError(err)
	}
	u.state = cart.Reduce(u.state, cart.ItemsRemoved{ProductIDs: productIDs})
	u.state = cart.Reduce(u.state, cart.End{})
	return u.snapshotLocked(), nil
}

// 以下の選択・配送の操作はローカルのみで、外部には出ない。

func (u *CartUsecase) ToggleSelect(productID string) CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = cart.Reduce(u.state, cart.SelectionToggled{ProductID: productID})
	return u.snapshotLocked()
}

func (u *CartUsecase) SelectAll() CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = cart.Reduce(u.state, cart.AllSelected{})
	return u.snapshotLocked()
}

func (u *CartUsecase) ClearSelected() CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = cart.Reduce(u.state, cart.SelectionCleared{})
	return u.snapshotLocked()
}

func (u *CartUsecase) SetShipping(option string) (CartSnapshot, error) {
	opt, err := model.ParseShippingOption(option)
	if err != nil {
		return u.Snapshot(), NewValidationError("invalid shipping option")
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = cart.Reduce(u.state, cart.ShippingSet{Option: opt})
	return u.snapshotLocked(), nil
}

// ApplyPromo はコードをプロモサービスで検証して置き換える。
// 前後の空白を落として大文字化する以外のローカル判定はしない。
// 失敗しても適用中のプロモは変えない。
func (u *CartUsecase) ApplyPromo(ctx context.Context, code string) (CartSnapshot, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return u.Snapshot(), NewValidationError("promo code is required")
	}

	u.mu.Lock()
	u.state = cart.Reduce(u.state, cart.Begin{})
	u.mu.Unlock()

	promo, err := u.promoSvc.ValidateCode(ctx, code)

	u.mu.Lock()
	defer u.mu.Unlock()
	if err != nil {
		u.state = cart.Reduce(u.state, cart.Fail{Message: remoteMessage(err)})
		return u.snapshotLocked(), NewRemoteError(err)
	}
	u.state = cart.Reduce(u.state, cart.PromoApplied{Promo: promo})
	u.state = cart.Reduce(u.state, cart.End{})
	return u.snapshotLocked(), nil
}

// ClearPromo はネットワークを使わずに解除する。
func (u *CartUsecase) ClearPromo() CartSnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state = cart.Reduce(u.state, cart.PromoCleared{})
	return u.snapshotLocked()
}

// Checkout は選択中の明細で注文を確定する。
// 事前条件（住所・選択あり）はネットワークに出る前に落とす。
// 失敗時はローカルの明細・選択をいっさい変えない。
// 成功時は注文後のサーバー側カートに合わせて再読込する。
func (u *CartUsecase) Checkout(ctx context.Context, addr model.Address) (model.OrderResult, CartSnapshot, error) {
	if err := u.checkout.ValidateAddress(addr); err != nil {
		return model.OrderResult{}, u.Snapshot(), err
	}

	u.mu.Lock()
	if u.checkoutInFlight {
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return model.OrderResult{}, snap, NewConflictError("checkout already in progress")
	}
	if u.state.Selected.Len() == 0 {
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return model.OrderResult{}, snap, NewValidationError("no items selected")
	}
	st := u.state
	u.checkoutInFlight = true
	u.state = cart.Reduce(u.state, cart.Begin{})
	u.mu.Unlock()

	result, err := u.checkout.Submit(ctx, st, addr, u.pricing)

	u.mu.Lock()
	u.checkoutInFlight = false
	if err != nil {
		u.state = cart.Reduce(u.state, cart.Fail{Message: remoteMessage(err)})
		snap := u.snapshotLocked()
		u.mu.Unlock()
		return model.OrderResult{}, snap, NewRemoteError(err)
	}
	u.state = cart.Reduce(u.state, cart.End{})
	u.mu.Unlock()

	// 注文は成立済み。再読込が失敗してもスナップショットのErrに残すだけにする。
	snap, loadErr := u.Load(ctx)
	if loadErr != nil {
		snap = u.Snapshot()
	}
	return result, snap, nil
}
