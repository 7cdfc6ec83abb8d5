// Package auth provides authentication and authorization primitives for the
// SureDrive API server.
//
// # Tokens
//
// Principals authenticate with HS256-signed JWTs carrying the principal ID,
// role, and display identity:
//
//	verifier, err := auth.NewJWTVerifier(secret)
//	token, err := verifier.Generate(auth.Claims{...}, ttl)
//	claims, err := verifier.Verify(token)
//
// NewJWTVerifier refuses an empty secret and Generate refuses a non-positive
// TTL; there is no fallback signing key. Tokens are stateless - verification
// is signature + expiry only, with no server-side revocation list. Deleting a
// principal invalidates its tokens because the middleware re-resolves the
// subject on every request.
//
// # Passwords
//
// HashPassword/CheckPassword wrap bcrypt at cost 10. Login paths that miss
// the user entirely should call DummyCheck so response timing does not
// enumerate accounts.
//
// # Middleware
//
// Middleware extracts the bearer token from the Authorization header,
// verifies it, resolves the live principal, and attaches an AuthContext to
// the request context. RequireRoles gates a route by an allow-list of roles
// and must run after Middleware:
//
//	mux.Handle("POST /api/admin/inspectors",
//	    authMW(requireAdmin(http.HandlerFunc(h.createInspector))))
package auth
