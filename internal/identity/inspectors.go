// ABOUTME: Admin-invoked inspector creation
// ABOUTME: Inspectors are created pre-verified with a required unique username

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/suredrive/suredrive-api/internal/auth"
	"github.com/suredrive/suredrive-api/internal/store"
)

// CreateInspectorParams holds the input for inspector creation.
type CreateInspectorParams struct {
	Name       string
	Username   string
	Password   string
	Phone      string
	NationalID string
	Language   string // optional
}

// CreateInspector creates a new inspector principal. Only admins reach this
// (the route is gated); inspectors are verified from the moment they exist.
func (s *Service) CreateInspector(ctx context.Context, params CreateInspectorParams) (*store.Principal, error) {
	fe := fieldErrors{}
	fe.require(map[string]string{
		"name":       params.Name,
		"username":   params.Username,
		"password":   params.Password,
		"phone":      params.Phone,
		"nationalId": params.NationalID,
	})
	if err := fe.err(); err != nil {
		return nil, err
	}

	if _, err := s.store.GetPrincipalByUsername(ctx, params.Username); err == nil {
		return nil, store.ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrPrincipalNotFound) {
		return nil, fmt.Errorf("checking existing username: %w", err)
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
		Role:         store.RoleInspector,
		Language:     params.Language,
		PasswordHash: hash,
		Username:     params.Username,
		IsVerified:   true,
	}

	if err := s.store.CreatePrincipal(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("created inspector", "id", p.ID, "username", p.Username)
	return p, nil
}
