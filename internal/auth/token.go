package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashToken hashes an opaque API token with SHA-256. The raw token is never
// persisted.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ExtractBearerToken pulls the token out of an Authorization header, empty
// string if the header is missing or not a Bearer scheme.
func ExtractBearerToken(authorization string) string {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authorization[len("Bearer "):])
}

// LooksLikeJWT reports whether a bearer token should be parsed as a JWT
// rather than looked up as an opaque API token. API tokens carry a "sengx_"
// prefix and contain no dots.
func LooksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2 && !strings.HasPrefix(token, "sengx_")
}
