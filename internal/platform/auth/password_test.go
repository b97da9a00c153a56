package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	// Minimal cost keeps the test fast.
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "s3cret" || strings.Contains(hash, "s3cret") {
		t.Fatal("hash must not contain the plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected non-matching password to fail")
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("p", 0)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	// bcrypt encodes the cost in the hash prefix, e.g. $2a$12$...
	if !strings.Contains(hash, "$12$") {
		t.Errorf("expected default cost 12 in hash, got %s", hash)
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same", 4)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	h2, err := HashPassword("same", 4)
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if h1 == h2 {
		t.Error("expected distinct hashes for the same input (per-hash salt)")
	}
}
