// ABOUTME: HTTP middleware for JWT authentication on API endpoints
// ABOUTME: Extracts the bearer token, resolves the principal, and gates by role

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/suredrive/suredrive-api/internal/store"
)

// PrincipalResolver resolves a principal ID from token claims to a live record.
type PrincipalResolver interface {
	GetPrincipal(ctx context.Context, id string) (*store.Principal, error)
}

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// writeAuthError writes a JSON error response in the API envelope shape.
func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"error":"` + msg + `"}`))
}

// Middleware creates an HTTP middleware that extracts and validates JWT
// tokens. The token's subject is resolved to a live principal record - a
// token for a deleted principal is rejected, which covers revocation-by-
// deletion without a server-side token list. The resolved principal is
// attached to the request context via WithAuth.
func Middleware(principals PrincipalResolver, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				writeAuthError(w, http.StatusUnauthorized, errMsg)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			principal, err := principals.GetPrincipal(r.Context(), claims.PrincipalID)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			authCtx := &AuthContext{Principal: principal, Claims: claims}
			next.ServeHTTP(w, r.WithContext(WithAuth(r.Context(), authCtx)))
		})
	}
}

// RequireRoles creates an HTTP middleware that allows only the listed roles.
// Must be used after Middleware.
func RequireRoles(roles ...store.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx := FromContext(r.Context())
			if authCtx == nil {
				writeAuthError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			if !authCtx.HasRole(roles...) {
				writeAuthError(w, http.StatusForbidden, "insufficient privileges")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
