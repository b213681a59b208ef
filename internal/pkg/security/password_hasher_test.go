package security

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plain password")
	}
	if err = CheckPasswordHash("secret123", hash); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err = CheckPasswordHash("wrong", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestPasswordHashEdgeCases(t *testing.T) {
	if _, err := HashPassword(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	if _, err := HashPassword(strings.Repeat("a", 73)); err == nil {
		t.Fatal("passwords over 72 bytes should be rejected")
	}
	err := CheckPasswordHash("secret123", "not-a-bcrypt-hash")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("corrupt hash should surface the bcrypt error, got %v", err)
	}
}
