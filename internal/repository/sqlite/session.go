package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mercadito/mercadito/internal/domain"
)

// SessionStore implements domain.SessionStore using SQLite. Expired
// rows are deleted lazily on lookup; there is no background sweeper.
type SessionStore struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSessionStore creates a new SQLite-backed SessionStore using the
// database's configured session lifetime.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db.SqlDB, ttl: db.sessionTTL}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.ExpiresAt = now.Add(s.ttl)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, user_name, user_email, user_role, logged_in, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.Token, session.UserID, session.UserName, session.UserEmail,
		string(session.UserRole), session.LoggedIn, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (*domain.Session, error) {
	session := &domain.Session{}
	var role string
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_id, user_name, user_email, user_role, logged_in, created_at, expires_at
		 FROM sessions WHERE token = ?`, token,
	).Scan(
		&session.Token, &session.UserID, &session.UserName, &session.UserEmail,
		&role, &session.LoggedIn, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	session.UserRole = domain.Role(role)

	if time.Now().UTC().After(session.ExpiresAt) {
		// Lazy cleanup; a failed delete only delays the next one.
		if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
			return nil, fmt.Errorf("delete expired session: %w", err)
		}
		return nil, domain.ErrNotFound
	}

	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
