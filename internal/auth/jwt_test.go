package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testConfig = JWTConfig{Secret: []byte("test-secret"), ExpirationHours: 1}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken(testConfig, "user-1", "org-1", "client")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ParseSessionToken(testConfig, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "user-1" || claims.OrgID != "org-1" || claims.RoleID != "client" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseSessionToken_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, _ := CreateSessionToken(testConfig, "user-1", "org-1", "client")
		_, err := ParseSessionToken(JWTConfig{Secret: []byte("other"), ExpirationHours: 1}, token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		now := time.Now().UTC()
		claims := SessionClaims{
			OrgID: "org-1",
			Type:  "session",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testConfig.Secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseSessionToken(testConfig, token); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})

	t.Run("wrong token type", func(t *testing.T) {
		now := time.Now().UTC()
		claims := SessionClaims{
			OrgID: "org-1",
			Type:  "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testConfig.Secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if _, err := ParseSessionToken(testConfig, token); !errors.Is(err, ErrNotSession) {
			t.Fatalf("expected ErrNotSession, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseSessionToken(testConfig, "aa.bb.cc"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
