// ABOUTME: Login flows for general users, inspectors, and drivers
// ABOUTME: Role-specific credential verification sharing one token-issuance tail

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/store"
)

// Login authenticates a general/admin principal by username and password.
// Unknown username and wrong password produce the same ErrInvalidCredentials,
// and the missing-user path burns a dummy bcrypt comparison to keep timing
// uniform.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"username": username,
		"password": password,
	})
	if err := fe.err(); err != nil {
		return nil, err
	}

	p, err := s.store.GetPrincipalByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrPrincipalNotFound) {
			auth.DummyCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up principal: %w", err)
	}

	if !auth.CheckPassword(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(p)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("login successful", "id", p.ID, "role", p.Role)
	return &LoginResult{Token: token, Principal: p}, nil
}

// InspectorLogin authenticates an inspector by username and password. A
// username that exists but belongs to another role fails exactly like an
// unknown username.
func (s *Service) InspectorLogin(ctx context.Context, username, password string) (*LoginResult, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"username": username,
		"password": password,
	})
	if err := fe.err(); err != nil {
		return nil, err
	}

	p, err := s.store.GetPrincipalByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrPrincipalNotFound) {
			auth.DummyCheck(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up inspector: %w", err)
	}

	if p.Role != store.RoleInspector {
		auth.DummyCheck(password)
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(p)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("inspector login successful", "id", p.ID)
	return &LoginResult{Token: token, Principal: p}, nil
}

// DriverLoginParams holds the input for driver login.
type DriverLoginParams struct {
	Name          string
	DriverLicense string
	PlateNumber   string
	Password      string
}

// DriverLogin authenticates a driver by the exact {plate, name, license}
// triple plus password. The license and plate formats are validated
// server-side before touching the store. "No such driver", "not yet
// verified", and "wrong password" are indistinguishable to the caller.
func (s *Service) DriverLogin(ctx context.Context, params DriverLoginParams) (*LoginResult, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"name":          params.Name,
		"driverLicense": params.DriverLicense,
		"plateNumber":   params.PlateNumber,
		"password":      params.Password,
	})
	if params.DriverLicense != "" && !validLicense(params.DriverLicense) {
		fe["driverLicense"] = "must be 3 uppercase letters followed by 8 digits"
	}
	if params.PlateNumber != "" && !validPlate(params.PlateNumber) {
		fe["plateNumber"] = "must match the format ABC-123DE"
	}
	if err := fe.err(); err != nil {
		return nil, err
	}

	p, err := s.store.FindDriverForLogin(ctx, params.PlateNumber, params.Name, params.DriverLicense)
	if err != nil {
		if errors.Is(err, store.ErrPrincipalNotFound) {
			auth.DummyCheck(params.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up driver: %w", err)
	}

	if !auth.CheckPassword(params.Password, p.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(p)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	s.logger.Info("driver login successful", "id", p.ID)
	return &LoginResult{Token: token, Principal: p}, nil
}
