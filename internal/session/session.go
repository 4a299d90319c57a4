// Package session keeps login sessions keyed by opaque tokens.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	// Create starts a session for the user and returns its token.
	Create(ctx context.Context, userID int64) (string, error)
	// Lookup returns the user behind token and extends the session.
	// It returns ErrNotFound for unknown or expired tokens.
	Lookup(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}

type entry struct {
	userID  int64
	expires time.Time
}

// MemoryStore is the in-process fallback used when no Redis address is set.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]entry)}
}

func (s *MemoryStore) Create(_ context.Context, userID int64) (string, error) {
	token := newToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = entry{userID: userID, expires: s.now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Lookup(_ context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	now := s.now()
	if !now.Before(e.expires) {
		delete(s.sessions, token)
		return 0, ErrNotFound
	}
	e.expires = now.Add(s.ttl)
	s.sessions[token] = e
	return e.userID, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

var _ Store = (*MemoryStore)(nil)
