// ABOUTME: Tests for the three login flows and their shared token tail
// ABOUTME: Covers credential failures, verification gating, and issued claims

package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suredrive/suredrive-api/internal/store"
)

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{
		Name: "Funke Ojo", Phone: "0803", NationalID: "NIN1", Password: "some-password",
		Role: store.RoleInspector, Username: "funke",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "funke", "some-password")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "funke", result.Principal.Username)

	claims, err := testVerifier(t).Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Principal.ID, claims.PrincipalID)
	assert.Equal(t, "inspector", claims.Role)
	assert.Equal(t, "funke", claims.Username)
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterParams{
		Name: "A", Phone: "0803", NationalID: "NIN1", Password: "correct-password",
		Role: store.RoleDriver, Username: "someone",
	})
	require.NoError(t, err)

	// Unknown username and wrong password are indistinguishable
	_, err = svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "someone", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.Login(context.Background(), "", "")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
}

func TestInspectorLogin_Success(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.CreateInspector(ctx, CreateInspectorParams{
		Name: "Kemi Lawal", Username: "kemi", Password: "inspector-pw",
		Phone: "0805", NationalID: "NIN5",
	})
	require.NoError(t, err)

	result, err := svc.InspectorLogin(ctx, "kemi", "inspector-pw")
	require.NoError(t, err)

	assert.True(t, result.Principal.IsVerified, "inspectors are created verified")

	claims, err := testVerifier(t).Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "inspector", claims.Role)
}

func TestInspectorLogin_WrongRole(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	// A general user with a username must not pass the inspector path
	_, err := svc.Register(ctx, RegisterParams{
		Name: "A", Phone: "0803", NationalID: "NIN1", Password: "pw",
		Role: store.RoleDriver, Username: "driverish",
	})
	require.NoError(t, err)

	_, err = svc.InspectorLogin(ctx, "driverish", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDriverLogin_FullLifecycle(t *testing.T) {
	svc, st := newTestService(t, Options{})
	ctx := context.Background()

	driver := registerTestDriver(t, svc)

	params := DriverLoginParams{
		Name:          driver.Name,
		DriverLicense: "ABC12345678",
		PlateNumber:   "ABC-123DE",
		Password:      "Aa1!aaaa",
	}

	// Unverified driver cannot log in
	_, err := svc.DriverLogin(ctx, params)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Verification flips the switch
	require.NoError(t, st.SetVerified(ctx, driver.ID, true))

	result, err := svc.DriverLogin(ctx, params)
	require.NoError(t, err)

	claims, err := testVerifier(t).Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, driver.ID, claims.PrincipalID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, driver.Name, claims.Name)
}

func TestDriverLogin_UniformFailures(t *testing.T) {
	svc, st := newTestService(t, Options{})
	ctx := context.Background()

	driver := registerTestDriver(t, svc)
	require.NoError(t, st.SetVerified(ctx, driver.ID, true))

	tests := []struct {
		name   string
		params DriverLoginParams
	}{
		{
			name: "unknown plate",
			params: DriverLoginParams{
				Name: driver.Name, DriverLicense: "ABC12345678",
				PlateNumber: "ZZZ-999ZZ", Password: "Aa1!aaaa",
			},
		},
		{
			name: "wrong name",
			params: DriverLoginParams{
				Name: "Someone Else", DriverLicense: "ABC12345678",
				PlateNumber: "ABC-123DE", Password: "Aa1!aaaa",
			},
		},
		{
			name: "wrong license",
			params: DriverLoginParams{
				Name: driver.Name, DriverLicense: "XYZ00000000",
				PlateNumber: "ABC-123DE", Password: "Aa1!aaaa",
			},
		},
		{
			name: "wrong password",
			params: DriverLoginParams{
				Name: driver.Name, DriverLicense: "ABC12345678",
				PlateNumber: "ABC-123DE", Password: "Bb2@bbbb",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DriverLogin(ctx, tt.params)
			assert.ErrorIs(t, err, ErrInvalidCredentials, "every failure mode is the same error")
		})
	}
}

func TestDriverLogin_RevalidatesFormats(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.DriverLogin(context.Background(), DriverLoginParams{
		Name:          "A",
		DriverLicense: "bad-license",
		PlateNumber:   "bad-plate",
		Password:      "Aa1!aaaa",
	})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "format errors are 400s, not 401s")
	assert.Contains(t, verr.Fields, "driverLicense")
	assert.Contains(t, verr.Fields, "plateNumber")
}

func TestDriverLogin_UnverifiedAfterToggle(t *testing.T) {
	svc, st := newTestService(t, Options{})
	ctx := context.Background()

	driver := registerTestDriver(t, svc)
	require.NoError(t, st.SetVerified(ctx, driver.ID, true))
	require.NoError(t, st.SetVerified(ctx, driver.ID, false))

	_, err := svc.DriverLogin(ctx, DriverLoginParams{
		Name: driver.Name, DriverLicense: "ABC12345678",
		PlateNumber: "ABC-123DE", Password: "Aa1!aaaa",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
