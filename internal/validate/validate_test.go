package validate_test

import (
	"strings"
	"testing"

	"github.com/mercadito/mercadito/internal/validate"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "Ana Gomez", true},
		{"accented", "María Pérez", true},
		{"enye", "Íñigo Muñoz", true},
		{"two chars", "Al", true},
		{"sixty chars", strings.Repeat("a", 60), true},
		{"surrounding spaces trimmed", "  Ana  ", true},
		{"too short", "A", false},
		{"too long", strings.Repeat("a", 61), false},
		{"digits", "Ana2", false},
		{"punctuation", "Ana-Maria", false},
		{"empty", "", false},
		{"only spaces", "   ", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Name(tc.input)
			if tc.valid && err != nil {
				t.Fatalf("Name(%q): unexpected error %v", tc.input, err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("Name(%q): expected error, got nil", tc.input)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"simple", "a@b.com", true},
		{"subdomain", "user@mail.example.org", true},
		{"uppercase", "A@B.COM", true},
		{"longest allowed", strings.Repeat("a", 110) + "@ex.com", true},
		{"missing at", "ab.com", false},
		{"missing domain dot", "a@bcom", false},
		{"whitespace", "a b@c.com", false},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 115) + "@ex.com", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Email(tc.input)
			if tc.valid && err != nil {
				t.Fatalf("Email(%q): unexpected error %v", tc.input, err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("Email(%q): expected error, got nil", tc.input)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := validate.NormalizeEmail("  MaRiA@Test.COM "); got != "maria@test.com" {
		t.Fatalf("NormalizeEmail: got %q", got)
	}
	// Case-folded forms must collide.
	if validate.NormalizeEmail("A@B.COM") != validate.NormalizeEmail("a@b.com") {
		t.Fatal("expected case-folded emails to normalize identically")
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty is valid", "", true},
		{"whitespace only is valid", "   ", true},
		{"digits", "1234567", true},
		{"international", "+52 55 1234 5678", true},
		{"parenthesized", "(55) 123-4567", true},
		{"too short", "123456", false},
		{"too long", strings.Repeat("1", 21), false},
		{"letters", "12345ab", false},
		{"plus in middle", "12+34567", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Phone(tc.input)
			if tc.valid && err != nil {
				t.Fatalf("Phone(%q): unexpected error %v", tc.input, err)
			}
			if !tc.valid && err == nil {
				t.Fatalf("Phone(%q): expected error, got nil", tc.input)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	if err := validate.Address(""); err != nil {
		t.Fatalf("empty address: %v", err)
	}
	if err := validate.Address(strings.Repeat("x", 255)); err != nil {
		t.Fatalf("255-char address: %v", err)
	}
	if err := validate.Address(strings.Repeat("x", 256)); err == nil {
		t.Fatal("expected error for 256-char address")
	}
}

func TestPassword(t *testing.T) {
	if err := validate.Password("secret"); err != nil {
		t.Fatalf("6-char password: %v", err)
	}
	if err := validate.Password("short"); err == nil {
		t.Fatal("expected error for 5-char password")
	}
	if err := validate.Password(strings.Repeat("p", 256)); err == nil {
		t.Fatal("expected error for 256-char password")
	}
}

func TestRegistration_FirstViolationWins(t *testing.T) {
	// Both name and password are invalid; the name failure must win.
	err := validate.Registration("X", "bad-email", "123", "", "ab", "ab")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Field != "nombre" {
		t.Fatalf("expected first violation on nombre, got %s", err.Field)
	}
}

func TestRegistration_ConfirmMismatch(t *testing.T) {
	err := validate.Registration("Ana Gomez", "ana@example.com", "", "", "secret1", "secret2")
	if err == nil || err.Field != "confirm_password" {
		t.Fatalf("expected confirm_password violation, got %v", err)
	}

	// Empty confirm means the client enforced the match itself.
	if err := validate.Registration("Ana Gomez", "ana@example.com", "", "", "secret1", ""); err != nil {
		t.Fatalf("empty confirm: unexpected error %v", err)
	}
}

func TestLogin(t *testing.T) {
	if err := validate.Login("ana@example.com", "secret1"); err != nil {
		t.Fatalf("valid login input: %v", err)
	}
	if err := validate.Login("not-an-email", "secret1"); err == nil {
		t.Fatal("expected error for bad email")
	}
	if err := validate.Login("ana@example.com", "12345"); err == nil {
		t.Fatal("expected error for short password")
	}
}
