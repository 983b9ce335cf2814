package pkg

import (
	"strings"
	"testing"
)

func TestGenerateOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := GenerateOrderNumber()
		if len(n) != 8 {
			t.Fatalf("expected 8 characters, got %q", n)
		}
		for _, c := range n {
			if !strings.ContainsRune(orderNumberAlphabet, c) {
				t.Fatalf("unexpected character %q in %q", c, n)
			}
		}
		seen[n] = true
	}
	if len(seen) < 99 {
		t.Fatalf("suspiciously many collisions: %d unique of 100", len(seen))
	}
}

func TestGenerateAPIToken(t *testing.T) {
	tok := GenerateAPIToken()
	if !strings.HasPrefix(tok, "sengx_") {
		t.Fatalf("expected sengx_ prefix, got %q", tok)
	}
	// No dots: opaque tokens must never be mistaken for JWTs.
	if strings.Contains(tok, ".") {
		t.Fatalf("token must not contain dots: %q", tok)
	}
	if tok == GenerateAPIToken() {
		t.Fatalf("expected unique tokens")
	}
}
