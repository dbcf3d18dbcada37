package domain

import (
	"context"
	"time"
)

// Role classifies what a user can do in the marketplace.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// ParseRole normalizes a raw role value. Unknown or empty values fall
// back to RoleBuyer rather than erroring.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return Role(raw)
	default:
		return RoleBuyer
	}
}

// User represents a registered user of the marketplace.
// Email is stored trimmed and lowercased and is unique across all users.
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Address      string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
