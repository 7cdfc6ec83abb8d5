// ABOUTME: Identity service wiring registration, login, and principal management
// ABOUTME: Owns credential verification rules and token issuance for all three roles

package identity

import (
	"errors"
	"log/slog"
	"time"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/store"
)

// ErrInvalidCredentials is returned for every login failure: unknown user,
// wrong password, and (for drivers) not-yet-verified all look identical so
// responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSelfAdminDisabled is returned when a caller tries to self-register with
// role=admin and the deployment hasn't opted in via auth.allow_self_admin.
var ErrSelfAdminDisabled = errors.New("admin self-registration is disabled")

// defaultTokenTTL applies when Options.TokenTTL is zero.
const defaultTokenTTL = 24 * time.Hour

// Service implements registration, login, and principal management.
type Service struct {
	store          store.Store
	tokens         auth.TokenIssuer
	logger         *slog.Logger
	tokenTTL       time.Duration
	allowSelfAdmin bool
}

// Options configures a Service.
type Options struct {
	// TokenTTL is the validity window for every issued token. One policy
	// for all login paths.
	TokenTTL time.Duration

	// AllowSelfAdmin permits Register with role=admin.
	AllowSelfAdmin bool
}

// New creates an identity service backed by the given store and token issuer.
func New(st store.Store, tokens auth.TokenIssuer, opts Options) *Service {
	ttl := opts.TokenTTL
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &Service{
		store:          st,
		tokens:         tokens,
		logger:         slog.Default().With("component", "identity"),
		tokenTTL:       ttl,
		allowSelfAdmin: opts.AllowSelfAdmin,
	}
}

// LoginResult pairs an issued token with the authenticated principal.
type LoginResult struct {
	Token     string
	Principal *store.Principal
}

// issueToken signs a token for the principal with the service-wide TTL.
func (s *Service) issueToken(p *store.Principal) (string, error) {
	return s.tokens.Generate(auth.Claims{
		PrincipalID: p.ID,
		Role:        string(p.Role),
		Name:        p.Name,
		Username:    p.Username,
	}, s.tokenTTL)
}
