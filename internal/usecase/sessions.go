package usecase

import "sync"

// セッションIDごとにCartUsecaseを1つずつ持つ。
// カートはセッション終了で捨てる前提なのでメモリ保持のみ。
type Sessions struct {
	mu      sync.Mutex
	carts   map[string]*CartUsecase
	factory func() *CartUsecase
}

func NewSessions(factory func() *CartUsecase) *Sessions {
	return &Sessions{
		carts:   make(map[string]*CartUsecase),
		factory: factory,
	}
}

// Get は無ければ作って返す。
func (s *Sessions) Get(sessionID string) *CartUsecase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if uc, ok := s.carts[sessionID]; ok {
		return uc
	}
	uc := s.factory()
	s.carts[sessionID] = uc
	return uc
}

// Drop はセッションのカートを破棄する（ログアウト時など）。
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
