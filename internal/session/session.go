// Package session holds the authenticated identity for the lifetime of the
// process and persists the bearer token between runs. The session object is
// constructed once at startup and injected wherever the token is needed;
// there is no ambient global state.
package session

import (
	"sync"

	"github.com/jonathan/job-finder/internal/types"
)

// Session is the process-wide login state. It satisfies api.TokenSource so
// the client reads the latest token immediately before every send. Reads and
// writes are serialized by UI interaction in practice; the mutex guarantees
// visibility of the latest write.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *types.User
	store Store
}

// New creates a session backed by store and restores any persisted record.
// A corrupt or unreadable record starts the session logged out rather than
// failing startup.
func New(store Store) *Session {
	s := &Session{store: store}
	if store != nil {
		if rec, err := store.Load(); err == nil && rec != nil {
			s.token = rec.Token
			if rec.User.Email != "" || rec.User.ID != "" {
				u := rec.User
				s.user = &u
			}
		}
	}
	return s
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the logged-in user, or nil when logged out.
func (s *Session) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LoggedIn reports whether a token is present.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Establish records a successful login or registration and persists it.
func (s *Session) Establish(token string, user types.User) error {
	s.mu.Lock()
	s.token = token
	u := user
	s.user = &u
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Save(Record{Token: token, User: user})
}

// Clear logs out: the in-memory state is dropped and the persisted record
// removed.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}
