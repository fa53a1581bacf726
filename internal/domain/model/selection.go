package model

import "sort"

// 選択中の商品IDの集合。
// 変更系メソッドは必ず新しい集合を返す（共有中の集合を書き換えない）。
type Selection map[string]struct{}

func NewSelection(ids ...string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) Len() int {
	return len(s)
}

// idを追加した新しい集合。
func (s Selection) With(id string) Selection {
	next := s.clone(1)
	next[id] = struct{}{}
	return next
}

// idsを除いた新しい集合。
func (s Selection) Without(ids ...string) Selection {
	next := s.clone(0)
	for _, id := range ids {
		delete(next, id)
	}
	return next
}

// ソート済みのID一覧（JSONやテストで順序を安定させる）。
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s Selection) clone(extra int) Selection {
	next := make(Selection, len(s)+extra)
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}
