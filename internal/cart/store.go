package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store хранит корзины по id сессии. Сервер обслуживает несколько
// покупателей одновременно, поэтому доступ к map закрыт мьютексом.
type Store struct {
	carts map[string]*Cart
	sync.RWMutex
}

// NewStore создает пустое хранилище корзин.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// GetOrCreate возвращает корзину сессии. При пустом id генерируется новый:
// хендлер отдает его клиенту в заголовке ответа.
func (s *Store) GetOrCreate(sessionID string) (*Cart, string) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.Lock()
	defer s.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c, sessionID
	}
	c := New()
	s.carts[sessionID] = c
	return c, sessionID
}

// Drop удаляет корзину сессии из хранилища.
func (s *Store) Drop(sessionID string) {
	s.Lock()
	defer s.Unlock()
	delete(s.carts, sessionID)
}
