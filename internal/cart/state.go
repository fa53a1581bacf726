// Package cart はカート状態の遷移機械です。
// 状態は値として扱い、Reduce が新しい状態を返します（その場書き換えはしない）。
package cart

import "app/internal/domain/model"

// カートの全状態。セッションごとに1つ。
// Loading は外部呼び出し中だけ true。Err は直近の失敗メッセージ（次の操作開始でクリア）。
type State struct {
	Items          []model.CartItem
	Selected       model.Selection
	ShippingOption model.ShippingOption
	AppliedPromo   *model.AppliedPromo
	Loading        bool
	Err            string
}

// 初期状態。配送は standard、選択は空。
func NewState() State {
	return State{
		Items:          []model.CartItem{},
		Selected:       model.NewSelection(),
		ShippingOption: model.ShippingStandard,
	}
}

// 選択中の明細だけを元の順序で返す。
func (s State) SelectedItems() []model.CartItem {
	out := make([]model.CartItem, 0, len(s.Items))
	for _, it := range s.Items {
		if s.Selected.Has(it.ProductID) {
			out = append(out, it)
		}
	}
	return out
}

// productIdが明細に存在するか。
func (s State) HasItem(productID string) bool {
	for _, it := range s.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

func (s State) itemIDs() []string {
	ids := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

func cloneItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
