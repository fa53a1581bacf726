package cart

import "app/internal/domain/model"

// 状態遷移はすべてタグ付きアクションで表す。
// 新しい遷移を足すときはここに型を追加して Reduce に節を足す。
type Action interface {
	isAction()
}

// 外部呼び出しの開始。Loading を立てて前回の Err を消す。
type Begin struct{}

// 外部呼び出しの失敗。Loading を下ろして Err を記録する。
type Fail struct {
	Message string
}

// 外部呼び出しの成功側の終了。Loading を下ろす。
type End struct{}

// カート再読込の結果。明細を置き換え、選択を全明細にリセットする。
type Loaded struct {
	Items []model.CartItem
}

// 1明細の数量変更。対象が無ければ何もしない。
type QtyUpdated struct {
	ProductID string
	Qty       int64
}

// 明細の削除。選択からも同じIDを除く。
type ItemsRemoved struct {
	ProductIDs []string
}

// 選択のトグル。明細に無いIDなら何もしない。
type SelectionToggled struct {
	ProductID string
}

type AllSelected struct{}

type SelectionCleared struct{}

type ShippingSet struct {
	Option model.ShippingOption
}

// プロモの置き換え（同時に1つだけ）。
type PromoApplied struct {
	Promo model.AppliedPromo
}

type PromoCleared struct{}

func (Begin) isAction()            {}
func (Fail) isAction()             {}
func (End) isAction()              {}
func (Loaded) isAction()           {}
func (QtyUpdated) isAction()       {}
func (ItemsRemoved) isAction()     {}
func (SelectionToggled) isAction() {}
func (AllSelected) isAction()      {}
func (SelectionCleared) isAction() {}
func (ShippingSet) isAction()      {}
func (PromoApplied) isAction()     {}
func (PromoCleared) isAction()     {}
