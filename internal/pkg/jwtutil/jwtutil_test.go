package jwtutil

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("super-secret", time.Hour, 42)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken("super-secret", token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected issued-at and expiry claims to be set")
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("secret", -1*time.Second, 1)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("right-secret", time.Hour, 1)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("wrong-secret", token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("secret", "not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken("secret", time.Hour, 7)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// Flip one character of the payload segment.
	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	if _, err := ParseToken("secret", string(raw)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}
