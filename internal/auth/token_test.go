// ABOUTME: Unit tests for JWT token issuing and verification
// ABOUTME: Tests round-trips, invalid tokens, expiry, and fail-closed construction

package auth

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("test-secret-key-for-jwt-signing")

func TestNewJWTVerifier_EmptySecret(t *testing.T) {
	_, err := NewJWTVerifier(nil)
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("NewJWTVerifier(nil) error = %v, want ErrEmptySecret", err)
	}

	_, err = NewJWTVerifier([]byte{})
	if !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("NewJWTVerifier(empty) error = %v, want ErrEmptySecret", err)
	}
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret)
	if err != nil {
		t.Fatalf("NewJWTVerifier() error = %v", err)
	}

	claims := Claims{
		PrincipalID: "principal-123",
		Role:        "driver",
		Name:        "Ade Balogun",
	}
	token, err := verifier.Generate(claims, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if got != claims {
		t.Errorf("Verify() = %+v, want %+v", got, claims)
	}
}

func TestJWTVerifier_RoundTrip_Username(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)

	claims := Claims{
		PrincipalID: "principal-456",
		Role:        "inspector",
		Username:    "inspector1",
	}
	token, err := verifier.Generate(claims, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.Username != "inspector1" {
		t.Errorf("Verify() username = %q, want %q", got.Username, "inspector1")
	}
}

func TestJWTVerifier_Generate_RejectsNonPositiveTTL(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)

	for _, ttl := range []time.Duration{0, -time.Hour} {
		_, err := verifier.Generate(Claims{PrincipalID: "p", Role: "admin"}, ttl)
		if !errors.Is(err, ErrInvalidTTL) {
			t.Errorf("Generate(ttl=%v) error = %v, want ErrInvalidTTL", ttl, err)
		}
	}
}

func TestJWTVerifier_Generate_RequiresPrincipalID(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)

	_, err := verifier.Generate(Claims{Role: "admin"}, time.Hour)
	if !errors.Is(err, ErrMissingClaim) {
		t.Errorf("Generate() error = %v, want ErrMissingClaim", err)
	}
}

func TestJWTVerifier_InvalidToken(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not-a-jwt-token",
		},
		{
			name:  "malformed JWT",
			token: "header.payload.signature",
		},
		{
			name: "wrong secret",
			token: func() string {
				// Generate with different secret
				otherVerifier, _ := NewJWTVerifier([]byte("different-secret"))
				token, _ := otherVerifier.Generate(Claims{PrincipalID: "p", Role: "admin"}, time.Hour)
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			if err == nil {
				t.Error("Verify() should have returned an error")
			}
		})
	}
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)

	// A one-nanosecond TTL is valid at issuance but dead by the time
	// Verify runs.
	token, err := verifier.Generate(Claims{PrincipalID: "p", Role: "driver"}, time.Nanosecond)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if err == nil {
		t.Fatal("Verify() should have returned an error for expired token")
	}
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTVerifier_IndependentTokens(t *testing.T) {
	verifier, _ := NewJWTVerifier(testSecret)
	claims := Claims{PrincipalID: "p", Role: "driver"}

	token1, err := verifier.Generate(claims, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	token2, err := verifier.Generate(claims, 2*time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if token1 == token2 {
		t.Error("tokens with different expiries should differ")
	}

	// Both verify independently
	for _, token := range []string{token1, token2} {
		got, err := verifier.Verify(token)
		if err != nil {
			t.Errorf("Verify() error = %v", err)
		}
		if got.PrincipalID != "p" {
			t.Errorf("Verify() principal = %q, want %q", got.PrincipalID, "p")
		}
	}
}
