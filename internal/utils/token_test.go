package utils

import "testing"

func TestHashToken(t *testing.T) {
	a := HashToken("token-1", "secret")
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	if a != HashToken("token-1", "secret") {
		t.Fatal("hash is not deterministic")
	}
	if a == HashToken("token-1", "other") {
		t.Fatal("hash ignores secret")
	}
	if !TokenMatches("token-1", a, "secret") {
		t.Fatal("TokenMatches = false for matching token")
	}
	if TokenMatches("token-2", a, "secret") {
		t.Fatal("TokenMatches = true for different token")
	}
}
