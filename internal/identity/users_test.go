// ABOUTME: Tests for principal management: list, get, update, verify, delete
// ABOUTME: Includes the verify-then-login driver lifecycle

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suredrive/suredrive-api/internal/store"
)

func TestVerifyUser_EnablesDriverLogin(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	driver := registerTestDriver(t, svc)

	verified, err := svc.VerifyUser(ctx, driver.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	result, err := svc.DriverLogin(ctx, DriverLoginParams{
		Name: driver.Name, DriverLicense: "ABC12345678",
		PlateNumber: "ABC-123DE", Password: "Aa1!aaaa",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestVerifyUser_NotFound(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	_, err := svc.VerifyUser(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrPrincipalNotFound)
}

func TestUpdateUser_Profile(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterParams{
		Name: "Old Name", Phone: "0803", NationalID: "NIN1", Password: "pw",
		Role: store.RoleDriver,
	})
	require.NoError(t, err)

	newName := "New Name"
	updated, err := svc.UpdateUser(ctx, p.ID, store.PrincipalUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, store.RoleDriver, updated.Role, "role never changes")
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterParams{
		Name: "A", Phone: "0803", NationalID: "NIN1", Password: "pw",
		Role: store.RoleDriver,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, p.ID))

	_, err = svc.GetUser(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrPrincipalNotFound)

	err = svc.DeleteUser(ctx, p.ID)
	assert.ErrorIs(t, err, store.ErrPrincipalNotFound)
}

func TestListUsers_RoleFilter(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	registerTestDriver(t, svc)
	_, err := svc.CreateInspector(ctx, CreateInspectorParams{
		Name: "Kemi", Username: "kemi", Password: "pw",
		Phone: "0805", NationalID: "NIN5",
	})
	require.NoError(t, err)

	inspectorRole := store.RoleInspector
	inspectors, err := svc.ListUsers(ctx, store.PrincipalFilter{Role: &inspectorRole})
	require.NoError(t, err)
	require.Len(t, inspectors, 1)
	assert.Equal(t, "kemi", inspectors[0].Username)
}
