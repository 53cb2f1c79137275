// Package sessions provides the cookie-keyed in-memory session store.
// State lives for the process lifetime only; there is deliberately no
// external session backend in this app.
package sessions

import (
	"sync"
	"time"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/domain/entities/session"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/security"
	"github.com/gin-gonic/gin"
)

// Store keeps all live sessions keyed by their opaque identifier
type Store struct {
	mu         sync.RWMutex
	sessions   map[string]*session.Session
	cookieName string
	ttl        time.Duration
	logger     *logging.ChanneledLogger
}

// NewStore creates a session store delivering identifiers via the named cookie
func NewStore(cookieName string, ttl time.Duration, logger *logging.ChanneledLogger) *Store {
	if logger != nil {
		logger.Session().Info("Initializing session store", "cookie", cookieName, "ttl", ttl)
	}
	return &Store{
		sessions:   make(map[string]*session.Session),
		cookieName: cookieName,
		ttl:        ttl,
		logger:     logger,
	}
}

// Attach resolves the request's session, creating one (and setting the
// cookie) when the request carries no valid session cookie.
func (s *Store) Attach(c *gin.Context) *session.Session {
	if id, err := c.Cookie(s.cookieName); err == nil && id != "" {
		s.mu.Lock()
		if sess, ok := s.sessions[id]; ok && !s.expired(sess) {
			sess.LastSeen = time.Now().UTC()
			s.mu.Unlock()
			return sess
		}
		s.mu.Unlock()
	}

	now := time.Now().UTC()
	sess := &session.Session{
		ID:        security.GenerateSessionID(),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	c.SetCookie(s.cookieName, sess.ID, int(s.ttl.Seconds()), "/", "", false, true)

	if s.logger != nil {
		s.logger.Session().Debug("Session created", "sessionId", sess.ID)
	}
	return sess
}

// Get returns the live session for an identifier
func (s *Store) Get(id string) (*session.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, false
	}
	return sess, true
}

// SetFlash queues a one-time message for the session's next rendered page
func (s *Store) SetFlash(id string, flash *session.FlashMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Flash = flash
	}
}

// PopFlash returns the pending flash message and clears it, so a page
// reload never re-displays the same message.
func (s *Store) PopFlash(id string) *session.FlashMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Flash == nil {
		return nil
	}
	flash := sess.Flash
	sess.Flash = nil
	return flash
}

// EnsureCart initializes an empty cart when the session has none and
// returns the session's cart. An existing cart is left untouched, so it
// survives across requests within one session.
func (s *Store) EnsureCart(id string) *session.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if sess.Cart == nil {
		sess.Cart = &session.Cart{}
	}
	return sess.Cart
}

// UpdateCart applies fn to the session's cart under the store lock
func (s *Store) UpdateCart(id string, fn func(*session.Cart)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Cart == nil {
		return false
	}
	fn(sess.Cart)
	return true
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PruneExpired drops sessions idle past the TTL and reports how many went
func (s *Store) PruneExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			pruned++
		}
	}
	if pruned > 0 && s.logger != nil {
		s.logger.Session().Info("Pruned expired sessions", "count", pruned, "remaining", len(s.sessions))
	}
	return pruned
}

// StartCleanup prunes expired sessions on the given interval until the
// stop channel closes.
func (s *Store) StartCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.PruneExpired()
		}
	}
}

func (s *Store) expired(sess *session.Session) bool {
	return s.ttl > 0 && time.Since(sess.LastSeen) > s.ttl
}
