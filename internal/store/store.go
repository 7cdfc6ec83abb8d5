// ABOUTME: Store interface and data types for SureDrive principal persistence
// ABOUTME: Defines the Principal record and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrPrincipalNotFound is returned when a requested principal does not exist
var ErrPrincipalNotFound = errors.New("principal not found")

// Duplicate-identity errors. The UNIQUE indexes on the principals table are
// the authoritative guard; these map the constraint violation back to the
// field that collided.
var (
	ErrDuplicatePhone      = errors.New("phone already registered")
	ErrDuplicateNationalID = errors.New("national ID already registered")
	ErrDuplicateUsername   = errors.New("username already taken")
	ErrDuplicatePlate      = errors.New("plate number already registered")
)

// Role identifies the single, immutable role of a principal
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDriver    Role = "driver"
	RoleInspector Role = "inspector"
)

// ValidRoles lists all valid roles
var ValidRoles = []Role{RoleAdmin, RoleDriver, RoleInspector}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleInspector:
		return true
	}
	return false
}

// Principal represents any authenticated actor: an admin/general user, a
// driver, or an inspector. All variants live in one table with role as the
// discriminator; role-specific fields are optional columns.
//
//   - Username is required and unique for inspectors, optional otherwise.
//   - PlateNumber is required and unique for drivers, absent otherwise.
//   - Drivers carry their license number in the NationalID field.
type Principal struct {
	ID           string
	Name         string
	Phone        string
	NationalID   string
	Role         Role
	Language     string // two-letter code, defaults to "en"
	IsVerified   bool
	PasswordHash string // bcrypt hash, empty until a password-bearing flow completes
	Username     string // empty = not set
	PlateNumber  string // empty = not set
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrincipalFilter narrows ListPrincipals results. Nil fields match everything.
type PrincipalFilter struct {
	Role       *Role
	IsVerified *bool
}

// PrincipalUpdate holds the mutable profile fields. Nil fields are left
// unchanged. Role is deliberately absent: it is fixed at creation.
type PrincipalUpdate struct {
	Name     *string
	Phone    *string
	Language *string
	Username *string
}

// Store defines the interface for principal persistence
type Store interface {
	// CreatePrincipal inserts a new principal. Returns ErrDuplicatePhone,
	// ErrDuplicateNationalID, ErrDuplicateUsername, or ErrDuplicatePlate
	// when a unique field collides with an existing record.
	CreatePrincipal(ctx context.Context, p *Principal) error

	// GetPrincipal retrieves a principal by ID.
	GetPrincipal(ctx context.Context, id string) (*Principal, error)

	// GetPrincipalByUsername retrieves a principal by username, any role.
	GetPrincipalByUsername(ctx context.Context, username string) (*Principal, error)

	// FindByPhoneOrNationalID returns the principal holding either value,
	// regardless of role. Used as the fast-path duplicate pre-check.
	FindByPhoneOrNationalID(ctx context.Context, phone, nationalID string) (*Principal, error)

	// GetDriverByPlate retrieves the driver registered for a plate number.
	GetDriverByPlate(ctx context.Context, plate string) (*Principal, error)

	// FindDriverForLogin retrieves a verified driver matching the exact
	// {plate, name, license} triple. Unverified drivers and partial
	// matches both return ErrPrincipalNotFound.
	FindDriverForLogin(ctx context.Context, plate, name, license string) (*Principal, error)

	// SetVerified flips the verification flag.
	SetVerified(ctx context.Context, id string, verified bool) error

	// UpdatePrincipal applies a profile update and returns the new record.
	UpdatePrincipal(ctx context.Context, id string, update PrincipalUpdate) (*Principal, error)

	// ListPrincipals returns principals matching the filter, newest first.
	ListPrincipals(ctx context.Context, filter PrincipalFilter) ([]Principal, error)

	// DeletePrincipal removes a principal by ID.
	DeletePrincipal(ctx context.Context, id string) error

	// Close releases the underlying database handle.
	Close() error
}
