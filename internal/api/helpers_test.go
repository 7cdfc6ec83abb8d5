// ABOUTME: Shared fixtures for API handler tests
// ABOUTME: Builds a full handler over a temp SQLite store with real JWTs

package api

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/identity"
	"github.com/suredrive/suredrive-api/internal/store"
)

var testSecret = []byte("api-test-secret")

// testAPI bundles the handler with the layers beneath it so tests can seed
// state directly when the HTTP route under test isn't the way to create it.
type testAPI struct {
	handler  http.Handler
	svc      *identity.Service
	st       store.Store
	verifier *auth.JWTVerifier
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	verifier, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	svc := identity.New(st, verifier, identity.Options{AllowSelfAdmin: true})
	return &testAPI{
		handler:  NewServer(svc, st, verifier).Handler(),
		svc:      svc,
		st:       st,
		verifier: verifier,
	}
}

// token mints a bearer token for the principal, bypassing the login routes.
func (a *testAPI) token(t *testing.T, p *store.Principal) string {
	t.Helper()
	token, err := a.verifier.Generate(auth.Claims{
		PrincipalID: p.ID,
		Role:        string(p.Role),
		Name:        p.Name,
		Username:    p.Username,
	}, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func (a *testAPI) seedAdmin(t *testing.T) *store.Principal {
	t.Helper()
	p, err := a.svc.Register(context.Background(), identity.RegisterParams{
		Name: "Admin", Phone: "08010000001", NationalID: "NINADMIN001",
		Password: "admin-pw", Role: store.RoleAdmin, Username: "admin",
	})
	require.NoError(t, err)
	return p
}

func (a *testAPI) seedInspector(t *testing.T) *store.Principal {
	t.Helper()
	p, err := a.svc.CreateInspector(context.Background(), identity.CreateInspectorParams{
		Name: "Kemi Lawal", Username: "kemi", Password: "inspector-pw",
		Phone: "08010000002", NationalID: "NININSP0001",
	})
	require.NoError(t, err)
	return p
}

func driverFilter() store.PrincipalFilter {
	role := store.RoleDriver
	return store.PrincipalFilter{Role: &role}
}

func (a *testAPI) seedDriver(t *testing.T) *store.Principal {
	t.Helper()
	p, err := a.svc.RegisterDriver(context.Background(), identity.DriverRegisterParams{
		Name: "Tunde Bello", DriverLicense: "ABC12345678", PlateNumber: "ABC-123DE",
		Phone: "08010000003", Password: "Aa1!aaaa",
	})
	require.NoError(t, err)
	return p
}
