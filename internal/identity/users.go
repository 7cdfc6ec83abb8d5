// ABOUTME: Principal management operations: list, get, update, verify, delete
// ABOUTME: Role gating happens at the route layer; these own the data rules

package identity

import (
	"context"

	"github.com/suredrive/suredrive-api/internal/store"
)

// ListUsers returns principals matching the filter, newest first.
func (s *Service) ListUsers(ctx context.Context, filter store.PrincipalFilter) ([]store.Principal, error) {
	return s.store.ListPrincipals(ctx, filter)
}

// GetUser retrieves a principal by ID.
func (s *Service) GetUser(ctx context.Context, id string) (*store.Principal, error) {
	return s.store.GetPrincipal(ctx, id)
}

// UpdateUser applies a profile update. Role is immutable and not part of
// PrincipalUpdate; uniqueness of phone and username is enforced by the store.
func (s *Service) UpdateUser(ctx context.Context, id string, update store.PrincipalUpdate) (*store.Principal, error) {
	p, err := s.store.UpdatePrincipal(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.logger.Info("updated principal", "id", id)
	return p, nil
}

// VerifyUser marks a principal as verified. For drivers this is the
// transition that makes login possible.
func (s *Service) VerifyUser(ctx context.Context, id string) (*store.Principal, error) {
	if err := s.store.SetVerified(ctx, id, true); err != nil {
		return nil, err
	}
	s.logger.Info("verified principal", "id", id)
	return s.store.GetPrincipal(ctx, id)
}

// DeleteUser removes a principal. Outstanding tokens for the principal die
// with it: the auth middleware re-resolves the subject on every request.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.DeletePrincipal(ctx, id); err != nil {
		return err
	}
	s.logger.Info("deleted principal", "id", id)
	return nil
}
