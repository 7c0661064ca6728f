package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store держит корзины по id сессии. Заброшенные сессии вычищаются лениво
// при любом обращении, если не трогались дольше ttl.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

type session struct {
	cart    *Cart
	touched time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func NewSessionID() string { return uuid.NewString() }

// evict вызывается под мьютексом.
func (s *Store) evict(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, sess := range s.sessions {
		if now.Sub(sess.touched) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Update выполняет fn над корзиной сессии (создаёт пустую, если её нет).
func (s *Store) Update(sessionID string, fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)
	sess, ok := s.sessions[sessionID]
	if !ok {
		c := New()
		c.now = s.now
		sess = &session{cart: c}
		s.sessions[sessionID] = sess
	}
	sess.touched = now
	fn(sess.cart)
}

// Items — снимок корзины; для неизвестной сессии пустой список.
func (s *Store) Items(sessionID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evict(now)
	sess, ok := s.sessions[sessionID]
	if !ok {
		return []Item{}
	}
	sess.touched = now
	return sess.cart.Items()
}

func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
