package domain

import (
	"context"
	"time"
)

// Session is the server-side record of an authenticated client, keyed by
// an opaque token the client presents in a cookie. It caches the user's
// attributes at login time; changes to the user are not reflected until
// the next login.
type Session struct {
	Token     string
	UserID    int64
	UserName  string
	UserEmail string
	UserRole  Role
	LoggedIn  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore defines server-side session persistence. The store owns
// the default session lifetime; lookups of expired tokens behave as if
// the session never existed.
type SessionStore interface {
	// Create persists the session and stamps CreatedAt/ExpiresAt.
	Create(ctx context.Context, session *Session) error
	// Get returns the session for token, or ErrNotFound if the token is
	// unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes the session for token. Deleting an unknown token
	// is not an error.
	Delete(ctx context.Context, token string) error
}
