package cart

import "app/internal/domain/model"

// Reduce は純粋な遷移関数。受け取った状態は変更せず、新しい状態を返す。
// 不変条件: Selected は常に Items のIDの部分集合。
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Begin:
		s.Loading = true
		s.Err = ""
		return s

	case Fail:
		s.Loading = false
		s.Err = a.Message
		return s

	case End:
		s.Loading = false
		return s

	case Loaded:
		items := make([]model.CartItem, len(a.Items))
		for i, it := range a.Items {
			if it.Qty < 1 {
				it.Qty = 1
			}
			items[i] = it
		}
		s.Items = items
		// 読込直後は全選択に戻す
		s.Selected = model.NewSelection(s.itemIDs()...)
		return s

	case QtyUpdated:
		qty := a.Qty
		if qty < 1 {
			qty = 1
		}
		if !s.HasItem(a.ProductID) {
			return s
		}
		items := cloneItems(s.Items)
		for i := range items {
			if items[i].ProductID == a.ProductID {
				items[i].Qty = qty
			}
		}
		s.Items = items
		return s

	case ItemsRemoved:
		drop := model.NewSelection(a.ProductIDs...)
		items := make([]model.CartItem, 0, len(s.Items))
		for _, it := range s.Items {
			if !drop.Has(it.ProductID) {
				items = append(items, it)
			}
		}
		s.Items = items
		s.Selected = s.Selected.Without(a.ProductIDs...)
		return s

	case SelectionToggled:
		if !s.HasItem(a.ProductID) {
			return s
		}
		if s.Selected.Has(a.ProductID) {
			s.Selected = s.Selected.Without(a.ProductID)
		} else {
			s.Selected = s.Selected.With(a.ProductID)
		}
		return s

	case AllSelected:
		s.Selected = model.NewSelection(s.itemIDs()...)
		return s

	case SelectionCleared:
		s.Selected = model.NewSelection()
		return s

	case ShippingSet:
		s.ShippingOption = a.Option
		return s

	case PromoApplied:
		p := a.Promo
		s.AppliedPromo = &p
		return s

	case PromoCleared:
		s.AppliedPromo = nil
		return s

	default:
		return s
	}
}
