// Package memory provides an in-memory SessionStore. It backs unit
// tests and single-process deployments that can afford to drop sessions
// on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mercadito/mercadito/internal/domain"
)

// SessionStore implements domain.SessionStore with a mutex-guarded map.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	ttl      time.Duration
}

// NewSessionStore creates an in-memory SessionStore with the given
// default session lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domain.Session),
		ttl:      ttl,
	}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = *session
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if time.Now().UTC().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
