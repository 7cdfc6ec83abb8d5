// ABOUTME: Registration flows for general principals and drivers
// ABOUTME: Validates role-specific rules, hashes passwords, and allocates IDs

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/store"
)

// RegisterParams holds the input for general registration.
type RegisterParams struct {
	Name       string
	Phone      string
	NationalID string
	Password   string
	Role       store.Role
	Language   string // optional, defaults to "en"
	Username   string // optional
}

// Register creates a new unverified principal with a caller-chosen role.
//
// Phone and national ID are unique across every role. The store's UNIQUE
// indexes are the authoritative guard; the pre-check here only produces a
// friendlier error before paying for the bcrypt hash.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*store.Principal, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"name":       params.Name,
		"phone":      params.Phone,
		"nationalId": params.NationalID,
		"password":   params.Password,
		"role":       string(params.Role),
	})
	if params.Role != "" && !params.Role.Valid() {
		fe["role"] = fmt.Sprintf("must be one of admin, driver, inspector (got %q)", params.Role)
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	if params.Role == store.RoleAdmin && !s.allowSelfAdmin {
		return nil, ErrSelfAdminDisabled
	}

	if existing, err := s.store.FindByPhoneOrNationalID(ctx, params.Phone, params.NationalID); err == nil {
		if existing.Phone == params.Phone {
			return nil, store.ErrDuplicatePhone
		}
		return nil, store.ErrDuplicateNationalID
	} else if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("checking existing principal: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	p := &store.Principal{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Phone:        params.Phone,
		NationalID:   params.NationalID,
		Role:         params.Role,
		Language:     params.Language,
		PasswordHash: hash,
		Username:     params.Username,
		IsVerified:   false,
	}

	if err := s.store.CreatePrincipal(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("registered principal", "id", p.ID, "role", p.Role)
	return p, nil
}

// DriverRegisterParams holds the input for the dedicated driver flow.
type DriverRegisterParams struct {
	Name          string
	DriverLicense string
	PlateNumber   string
	Phone         string
	Password      string
	Language      string // optional
}

// RegisterDriver creates a new unverified driver. The license and plate must
// match the regional formats and the password must meet the strength policy;
// every violated rule is reported by field. Drivers stay unable to log in
// until an admin or inspector verifies them.
func (s *Service) RegisterDriver(ctx context.Context, params DriverRegisterParams) (*store.Principal, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"name":          params.Name,
		"driverLicense": params.DriverLicense,
		"plateNumber":   params.PlateNumber,
		"phone":         params.Phone,
		"password":      params.Password,
	})
	if params.DriverLicense != "" && !validLicense(params.DriverLicense) {
		fe["driverLicense"] = "must be 3 uppercase letters followed by 8 digits"
	}
	if params.PlateNumber != "" && !validPlate(params.PlateNumber) {
		fe["plateNumber"] = "must match the format ABC-123DE"
	}
	if params.Password != "" {
		if reason := checkPasswordStrength(params.Password); reason != "" {
			fe["password"] = reason
		}
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	if _, err := s.store.GetDriverByPlate(ctx, params.PlateNumber); err == nil {
		return nil, store.ErrDuplicatePlate
	} else if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("checking existing driver: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	// The license number doubles as the driver's national-ID value, so it
	// participates in the cross-role national-ID uniqueness constraint.
	p := &store.Principal{
		ID:           uuid.NewString(),
		Name:         params.Name,
		Phone:        params.Phone,
		NationalID:   params.DriverLicense,
		Role:         store.RoleDriver,
		Language:     params.Language,
		PasswordHash: hash,
		PlateNumber:  params.PlateNumber,
		IsVerified:   false,
	}

	if err := s.store.CreatePrincipal(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("registered driver", "id", p.ID, "plate", p.PlateNumber)
	return p, nil
}
