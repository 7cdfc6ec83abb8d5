// ABOUTME: HTTP server wiring for the SureDrive authentication API
// ABOUTME: Registers routes on a ServeMux and layers the auth and role middleware

package api

import (
	"log/slog"
	"net/http"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/identity"
	"github.com/suredrive/suredrive-api/internal/store"
)

// Server exposes the identity service over HTTP.
type Server struct {
	identity   *identity.Service
	principals auth.PrincipalResolver
	verifier   auth.TokenVerifier
	logger     *slog.Logger
}

// NewServer creates an API server. The resolver is consulted on every
// authenticated request so deleted principals lose access immediately.
func NewServer(svc *identity.Service, principals auth.PrincipalResolver, verifier auth.TokenVerifier) *Server {
	return &Server{
		identity:   svc,
		principals: principals,
		verifier:   verifier,
		logger:     slog.Default().With("component", "api"),
	}
}

// Handler builds the route table. Public auth endpoints are open; everything
// else goes through the JWT middleware, with role gates on the admin and
// verification routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/inspector-login", s.handleInspectorLogin)
	mux.HandleFunc("POST /api/auth/driver-login", s.handleDriverLogin)
	mux.HandleFunc("POST /api/auth/driver-register", s.handleDriverRegister)

	authed := auth.Middleware(s.principals, s.verifier)
	adminOnly := auth.RequireRoles(store.RoleAdmin)
	canVerify := auth.RequireRoles(store.RoleAdmin, store.RoleInspector)

	mux.Handle("GET /api/me", authed(http.HandlerFunc(s.handleMe)))

	mux.Handle("POST /api/admin/inspectors", authed(adminOnly(http.HandlerFunc(s.handleCreateInspector))))

	mux.Handle("GET /api/users", authed(adminOnly(http.HandlerFunc(s.handleListUsers))))
	mux.Handle("GET /api/users/{id}", authed(http.HandlerFunc(s.handleGetUser)))
	mux.Handle("PUT /api/users/{id}", authed(http.HandlerFunc(s.handleUpdateUser)))
	mux.Handle("DELETE /api/users/{id}", authed(adminOnly(http.HandlerFunc(s.handleDeleteUser))))
	mux.Handle("PUT /api/users/{id}/verify", authed(canVerify(http.HandlerFunc(s.handleVerifyUser))))

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "", map[string]string{"status": "ok"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	authCtx := auth.MustFromContext(r.Context())
	resp := toPrincipalResponse(authCtx.Principal)
	writeSuccess(w, http.StatusOK, "", resp)
}
