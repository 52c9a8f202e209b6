package session

import (
	"context"
	"sync"
	"time"

	"github.com/bashyamgroup/employee-console/internal/domain/auth"
	leaveService "github.com/bashyamgroup/employee-console/internal/service/leave"
	"github.com/bashyamgroup/employee-console/internal/service/search"
	"github.com/google/uuid"
)

// Session is one logged-in browser. It owns the upstream token and the two
// stateful screens (listing and leave view) for that browser.
type Session struct {
	ID        string
	Token     string
	User      auth.User
	Search    *search.Coordinator
	Leave     *leaveService.View
	ExpiresAt time.Time
}

func (s *Session) expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (s *Session) close() {
	if s.Search != nil {
		s.Search.Close()
	}
}

// Store keeps live sessions in memory. Sessions disappear on logout, on
// expiry, or on process restart; the browser then just logs in again.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func (s *Store) Create(token string, user auth.User, searchView *search.Coordinator, leaveView *leaveService.View) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		Search:    searchView,
		Leave:     leaveView,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	if sess.expired(time.Now()) {
		s.Delete(id)
		return nil, auth.ErrSessionExpired
	}
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		sess.close()
	}
}

// Sweep drops expired sessions every interval until ctx is cancelled.
func (s *Store) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.mu.Lock()
			var closed []*Session
			for id, sess := range s.sessions {
				if sess.expired(now) {
					delete(s.sessions, id)
					closed = append(closed, sess)
				}
			}
			s.mu.Unlock()
			for _, sess := range closed {
				sess.close()
			}
		}
	}
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sess)
}

func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return sess, ok
}
