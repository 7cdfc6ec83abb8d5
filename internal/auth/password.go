// ABOUTME: Password hashing and verification built on bcrypt
// ABOUTME: Provides timing-safe checks including a dummy compare for missing users

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for new passwords.
const HashCost = 10

// dummyHash is a real bcrypt hash of a throwaway value. Login paths compare
// against it when the user doesn't exist so response timing doesn't reveal
// which usernames are registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword hashes a plaintext password with bcrypt.
// The plaintext is never logged or persisted.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), HashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// An empty hash never matches (drivers before their password-bearing flow
// completes, passkey-only accounts) but still burns a bcrypt comparison.
func CheckPassword(plaintext, hash string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// DummyCheck performs a bcrypt comparison against a throwaway hash.
// Call it on the user-not-found path to keep login timing constant.
func DummyCheck(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plaintext))
}
