package service

import (
	"testing"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
)

func TestExchange_ValidKey(t *testing.T) {
	svc := NewTokenService("the-api-key", "test-secret", time.Hour)

	token, err := svc.Exchange("the-api-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Subject != "api-client" {
		t.Errorf("token subject = %q, want %q", claims.Subject, "api-client")
	}
}

func TestExchange_WrongKey(t *testing.T) {
	svc := NewTokenService("the-api-key", "test-secret", time.Hour)

	_, err := svc.Exchange("not-the-key")
	if err != ErrInvalidAPIKey {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}

func TestExchange_UnconfiguredKey(t *testing.T) {
	svc := NewTokenService("", "test-secret", time.Hour)

	_, err := svc.Exchange("")
	if err != ErrInvalidAPIKey {
		t.Fatalf("expected ErrInvalidAPIKey when no key is configured, got %v", err)
	}
}
