// ABOUTME: Authentication context for tracking identity through request handlers
// ABOUTME: Provides WithAuth/FromContext for propagating auth info via context

package auth

import (
	"context"

	"github.com/suredrive/suredrive-api/internal/store"
)

// AuthContext holds the authenticated identity information extracted from a
// request. This is populated by the auth middleware after the token's
// principal has been resolved to a live store record.
type AuthContext struct {
	Principal *store.Principal
	Claims    Claims
}

// Role returns the authenticated principal's role.
func (a *AuthContext) Role() store.Role {
	return a.Principal.Role
}

// HasRole returns true if the principal's role is in the given list.
func (a *AuthContext) HasRole(roles ...store.Role) bool {
	for _, r := range roles {
		if a.Principal.Role == r {
			return true
		}
	}
	return false
}

// authContextKey is the key type for storing AuthContext in context.Context.
type authContextKey struct{}

// WithAuth returns a new context with the AuthContext attached.
func WithAuth(ctx context.Context, auth *AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// FromContext retrieves the AuthContext from the context, returning nil if not present.
func FromContext(ctx context.Context) *AuthContext {
	val := ctx.Value(authContextKey{})
	if val == nil {
		return nil
	}
	auth, ok := val.(*AuthContext)
	if !ok {
		return nil
	}
	return auth
}

// MustFromContext retrieves the AuthContext from the context, panicking if not present.
func MustFromContext(ctx context.Context) *AuthContext {
	auth := FromContext(ctx)
	if auth == nil {
		panic("auth: AuthContext not found in context")
	}
	return auth
}
