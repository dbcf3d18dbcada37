package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mercadito/mercadito/internal/domain"
	"github.com/mercadito/mercadito/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user registration, login, session verification,
// and logout.
type AuthService struct {
	users      domain.UserRepository
	sessions   domain.SessionStore
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, sessions domain.SessionStore, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// RegisterInput carries the fields of a registration form. Phone,
// Address, Role, and ConfirmPassword are optional.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Phone           string
	Address         string
}

// Register creates a new user account and logs it in. Validation stops
// at the first failing field; the returned error wraps
// domain.ErrInvalidInput with a user-presentable message. A duplicate
// email yields domain.ErrDuplicateEmail whether it is caught by the
// pre-check or by the unique constraint at insert time.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, *domain.Session, error) {
	if verr := validate.Registration(in.Name, in.Email, in.Phone, in.Address, in.Password, in.ConfirmPassword); verr != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, verr.Message)
	}

	email := validate.NormalizeEmail(in.Email)

	// Friendly pre-check; the unique index on users.email is the real
	// guarantee against two concurrent registrations.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Role:         domain.ParseRole(strings.ToUpper(strings.TrimSpace(in.Role))),
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, nil, domain.ErrDuplicateEmail
		}
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies credentials and opens a new session. A nonexistent
// email and a wrong password are indistinguishable: both return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if verr := validate.Login(email, password); verr != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, verr.Message)
	}

	user, err := s.users.GetByEmail(ctx, validate.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// VerifySession resolves a session token to its cached user attributes.
// It consults only the session store, never the users table, so a
// session reflects the user as they were at login. Unknown, expired,
// and logged-out tokens all return domain.ErrNotFound.
func (s *AuthService) VerifySession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.LoggedIn {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Logout destroys the session for token. It is idempotent: an empty or
// unknown token still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(ctx context.Context, user *domain.User) (*domain.Session, error) {
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  user.Role,
		LoggedIn:  true,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}
