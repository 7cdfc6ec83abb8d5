// ABOUTME: JWT token issuing and verification for authenticating API requests
// ABOUTME: Uses HS256 signing with a configured secret; refuses empty secrets

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
	ErrInvalidTTL   = errors.New("token ttl must be positive")
	ErrEmptySecret  = errors.New("signing secret must not be empty")
)

// Claims is the signed payload identifying a principal.
type Claims struct {
	PrincipalID string
	Role        string
	Name        string
	Username    string
}

// TokenVerifier defines the interface for token verification
type TokenVerifier interface {
	Verify(tokenString string) (Claims, error)
}

// TokenIssuer defines the interface for token generation
type TokenIssuer interface {
	Generate(claims Claims, ttl time.Duration) (string, error)
}

// JWTVerifier implements TokenIssuer and TokenVerifier using HS256 signed JWTs
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a new JWT verifier with the given secret.
// An empty secret is refused: a server without a configured secret must not
// issue tokens at all.
func NewJWTVerifier(secret []byte) (*JWTVerifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &JWTVerifier{secret: secret}, nil
}

// Generate creates a new JWT token for the given claims with expiration.
// A non-positive ttl is rejected rather than producing a token that is
// already dead on arrival.
func (v *JWTVerifier) Generate(claims Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}
	if claims.PrincipalID == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	now := time.Now()
	mapClaims := jwt.MapClaims{
		"sub":  claims.PrincipalID,
		"role": claims.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if claims.Name != "" {
		mapClaims["name"] = claims.Name
	}
	if claims.Username != "" {
		mapClaims["username"] = claims.Username
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(v.secret)
}

// Verify validates the token and extracts the claims.
func (v *JWTVerifier) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil {
		// Check if it's specifically an expiration error
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	role, ok := mapClaims["role"].(string)
	if !ok || role == "" {
		return Claims{}, fmt.Errorf("%w: role", ErrMissingClaim)
	}

	claims := Claims{PrincipalID: sub, Role: role}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}

	return claims, nil
}
