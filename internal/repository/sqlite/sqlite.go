// Package sqlite implements the credential store and the persistent
// session store on a single SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mercadito/mercadito/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection and hands out repositories bound to it.
type DB struct {
	SqlDB      *sql.DB
	sessionTTL time.Duration
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign keys. sessionTTL is the default
// lifetime the session store stamps on new sessions.
func New(dbPath string, sessionTTL time.Duration) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db, sessionTTL: sessionTTL}, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

// Users returns the SQLite-backed user repository.
func (db *DB) Users() *UserRepository {
	return NewUserRepository(db)
}

// Sessions returns the SQLite-backed session store.
func (db *DB) Sessions() *SessionStore {
	return NewSessionStore(db)
}
