package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber returns an 8-character uppercase alphanumeric order
// number. The space is large enough that collisions are rare but not
// impossible; callers guard creation with a conditional insert and may
// regenerate on conflict.
func GenerateOrderNumber() string {
	return randomFromAlphabet(orderNumberAlphabet, 8)
}

// GenerateAPIToken returns a new opaque API token: a recognizable prefix plus
// 36 bytes of URL-safe randomness. Only the SHA-256 hash is persisted.
func GenerateAPIToken() string {
	b := make([]byte, 36)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure means the process cannot run safely
	}
	return "sengx_" + base64.RawURLEncoding.EncodeToString(b)
}

func randomFromAlphabet(alphabet string, n int) string {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out)
}
