package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret-key", 30*time.Minute, 7*24*time.Hour)
}

func TestGeneratePairIssuesDistinctTokens(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("expected access and refresh tokens to differ")
	}
	if pair.TokenType != "bearer" {
		t.Fatalf("expected token type bearer, got %q", pair.TokenType)
	}
}

func TestParseAccessReturnsSubject(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.GeneratePair("user-42")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}

	subject, err := manager.ParseAccess(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccess() unexpected error: %v", err)
	}
	if subject != "user-42" {
		t.Fatalf("ParseAccess() subject = %q, want user-42", subject)
	}
}

func TestParseAccessRejectsRefreshToken(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}

	if _, err := manager.ParseAccess(pair.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token, got %v", err)
	}
}

func TestParseRefreshRejectsAccessToken(t *testing.T) {
	manager := newTestManager()

	pair, err := manager.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}

	if _, err := manager.ParseRefresh(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret-key", -time.Minute, -time.Minute)

	pair, err := manager.GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}

	if _, err := manager.ParseAccess(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	pair, err := newTestManager().GeneratePair("user-1")
	if err != nil {
		t.Fatalf("GeneratePair() unexpected error: %v", err)
	}

	other := NewTokenManager("another-secret", 30*time.Minute, 7*24*time.Hour)
	if _, err := other.ParseAccess(pair.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := newTestManager().ParseAccess("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}
