package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("Email = %q, want dev@example.com", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken(refresh token) = %v, want ErrTokenInvalid", err)
	}
	if _, err := svc.ValidateRefreshToken(token); err != nil {
		t.Errorf("ValidateRefreshToken: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()
	issued := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateAccessToken = %v, want ErrTokenExpired", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ValidateAccessToken = %v, want ErrTokenInvalid", err)
	}
}
