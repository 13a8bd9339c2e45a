package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)

	raw, err := tokens.Issue(42, "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, claims, err := tokens.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 || claims.Username != "ana" {
		t.Fatalf("unexpected claims: id=%d %+v", id, claims)
	}
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens("secret", time.Minute)
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Issue(1, "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }

	if _, _, err := tokens.Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokens_WrongSecret(t *testing.T) {
	raw, _ := NewTokens("one", time.Hour).Issue(1, "ana")

	if _, _, err := NewTokens("two", time.Hour).Parse(raw); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
