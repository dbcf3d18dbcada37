// Package validate holds the single canonical rule set for auth form
// fields. The same functions back both the pre-flight checks exposed to
// the UI layer and the authoritative server-side validation, so the two
// can never drift apart.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 60
	emailMaxLen    = 120
	phoneMinLen    = 7
	phoneMaxLen    = 20
	addressMaxLen  = 255
	passwordMinLen = 6
	passwordMaxLen = 255
)

var (
	// Letters and spaces only, including the accented Latin letters used
	// in Spanish names.
	nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ\s]+$`)

	// Deliberately simple: one @, no whitespace, a dot in the domain.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits, spaces, dashes, parentheses, optional leading +.
	phoneRe = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// Error is a field-level validation failure with a message suitable for
// showing to the user as-is.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Name checks a user's display name. The input is trimmed before checking.
func Name(name string) *Error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < nameMinLen {
		return fieldErr("nombre", "name must be at least %d characters", nameMinLen)
	}
	if len([]rune(name)) > nameMaxLen {
		return fieldErr("nombre", "name cannot exceed %d characters", nameMaxLen)
	}
	if !nameRe.MatchString(name) {
		return fieldErr("nombre", "name may only contain letters and spaces")
	}
	return nil
}

// Email checks an email address. Callers should normalize with
// NormalizeEmail before storage or comparison.
func Email(email string) *Error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fieldErr("correo", "email is required")
	}
	if !emailRe.MatchString(email) {
		return fieldErr("correo", "email address is not valid")
	}
	if len(email) > emailMaxLen {
		return fieldErr("correo", "email cannot exceed %d characters", emailMaxLen)
	}
	return nil
}

// NormalizeEmail produces the canonical form used for storage and
// lookups, so Maria@Test.com and maria@test.com refer to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Phone checks an optional phone number. An empty (or all-whitespace)
// value is valid.
func Phone(phone string) *Error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if len(phone) < phoneMinLen || len(phone) > phoneMaxLen {
		return fieldErr("telefono", "phone must be between %d and %d characters", phoneMinLen, phoneMaxLen)
	}
	if !phoneRe.MatchString(phone) {
		return fieldErr("telefono", "phone number is not valid")
	}
	return nil
}

// Address checks an optional address.
func Address(address string) *Error {
	if len([]rune(strings.TrimSpace(address))) > addressMaxLen {
		return fieldErr("direccion", "address cannot exceed %d characters", addressMaxLen)
	}
	return nil
}

// Password checks a plaintext password. The upper bound guards the
// hasher, not the user.
func Password(password string) *Error {
	if len(password) < passwordMinLen {
		return fieldErr("password", "password must be at least %d characters", passwordMinLen)
	}
	if len(password) > passwordMaxLen {
		return fieldErr("password", "password cannot exceed %d characters", passwordMaxLen)
	}
	return nil
}

// Registration runs the full rule set for a registration form and
// returns the first violation, in a fixed order: name, email, phone,
// password, confirmation, address. confirm is only checked when
// non-empty, so clients that enforce the match themselves may omit it.
func Registration(name, email, phone, address, password, confirm string) *Error {
	if err := Name(name); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	if err := Phone(phone); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	if confirm != "" && confirm != password {
		return fieldErr("confirm_password", "passwords do not match")
	}
	if err := Address(address); err != nil {
		return err
	}
	return nil
}

// Login runs the reduced rule set for a login form: email format and
// password minimum length only.
func Login(email, password string) *Error {
	if err := Email(email); err != nil {
		return err
	}
	if len(password) < passwordMinLen {
		return fieldErr("password", "password must be at least %d characters", passwordMinLen)
	}
	return nil
}
