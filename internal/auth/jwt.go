package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session tokens are HS256 JWTs with a type discriminator so they can never
// be confused with other token uses.

const sessionTokenType = "session"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNotSession   = errors.New("not a session token")
)

// SessionClaims is the payload of a session JWT.
type SessionClaims struct {
	OrgID  string `json:"org_id"`
	RoleID string `json:"role_id,omitempty"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// JWTConfig carries the signing secret and token lifetime.
type JWTConfig struct {
	Secret          []byte
	ExpirationHours int
}

// JWTConfigFromEnv reads JWT_SECRET_KEY and JWT_EXPIRATION_HOURS (default 72).
func JWTConfigFromEnv() JWTConfig {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		secret = "change-me-in-production"
	}
	hours := 72
	if v, err := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS")); err == nil && v > 0 {
		hours = v
	}
	return JWTConfig{Secret: []byte(secret), ExpirationHours: hours}
}

// CreateSessionToken mints a signed session JWT for a user.
func CreateSessionToken(cfg JWTConfig, userID, orgID, roleID string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		OrgID:  orgID,
		RoleID: roleID,
		Type:   sessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpirationHours) * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
}

// ParseSessionToken validates signature, expiry, and the session type
// discriminator. Any failure is a hard reject; there is no anonymous fallback.
func ParseSessionToken(cfg JWTConfig, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return cfg.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != sessionTokenType {
		return nil, ErrNotSession
	}
	return claims, nil
}
