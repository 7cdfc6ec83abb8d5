// ABOUTME: Shared test helpers for the identity service tests
// ABOUTME: Builds a Service over a temp SQLite store with a real JWT issuer

package identity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/store"
)

var testSecret = []byte("test-secret-key-for-jwt-signing")

// newTestService creates a Service over a temp SQLite store.
func newTestService(t *testing.T, opts Options) (*Service, *store.SQLiteStore) {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	verifier, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	return New(st, verifier, opts), st
}

// registerTestDriver registers a valid driver and returns it.
func registerTestDriver(t *testing.T, svc *Service) *store.Principal {
	t.Helper()
	p, err := svc.RegisterDriver(context.Background(), DriverRegisterParams{
		Name:          "Ade Balogun",
		DriverLicense: "ABC12345678",
		PlateNumber:   "ABC-123DE",
		Phone:         "08031112222",
		Password:      "Aa1!aaaa",
	})
	require.NoError(t, err)
	return p
}

// testVerifier returns a verifier sharing the test secret, for decoding
// tokens issued by the service under test.
func testVerifier(t *testing.T) *auth.JWTVerifier {
	t.Helper()
	v, err := auth.NewJWTVerifier(testSecret)
	require.NoError(t, err)
	return v
}
