// ABOUTME: Unit tests for bcrypt password hashing and verification
// ABOUTME: Tests hash/check round-trips and the empty-hash rejection path

package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Aa1!aaaa")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("HashPassword() = %q, want bcrypt hash", hash)
	}

	if !CheckPassword("Aa1!aaaa", hash) {
		t.Error("CheckPassword() = false for correct password")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	hash1, err := HashPassword("Aa1!aaaa")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	hash2, err := HashPassword("Aa1!aaaa")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestCheckPassword_EmptyHashNeverMatches(t *testing.T) {
	// Drivers have an empty hash until a password-bearing flow completes;
	// no plaintext may match it, not even the empty string.
	if CheckPassword("", "") {
		t.Error("CheckPassword(\"\", \"\") = true, want false")
	}
	if CheckPassword("anything", "") {
		t.Error("CheckPassword() = true against empty hash")
	}
}
