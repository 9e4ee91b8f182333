package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// MembersService lists and revokes the role assignments of a company.
// Both operations need users.invite in that company.
type MembersService struct {
	Store       store.Store
	Permissions *PermissionManager
}

// List returns the active assignments of empresaID, highest role first.
func (s *MembersService) List(ctx context.Context, actor *domain.User, empresaID string) ([]domain.UserRole, error) {
	if err := s.authorize(ctx, actor, empresaID); err != nil {
		return nil, err
	}
	return s.Store.UserRoles().ListMembers(ctx, empresaID)
}

// Revoke deactivates one assignment. The actor must outrank the member in
// the assignment's company, so nobody can revoke themselves or a peer. The
// member's cached permissions are dropped so the loss applies at once.
func (s *MembersService) Revoke(ctx context.Context, actor *domain.User, assignmentID string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	ur, err := s.Store.UserRoles().GetUserRole(ctx, assignmentID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !ur.Active) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, actor, ur.EmpresaID); err != nil {
		return err
	}
	ok, err := s.Permissions.CanManageUser(ctx, actor.ID, ur.UserID, ur.EmpresaID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}

	if err := s.Store.UserRoles().DeactivateRole(ctx, ur.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	s.Permissions.ClearCache(ur.UserID)

	slogx.FromContext(ctx).Info("membership revoked",
		slog.String("assignment_id", ur.ID),
		slog.String("member_id", ur.UserID),
		slog.String("empresa_id", ur.EmpresaID),
		slog.String("role", ur.RoleName),
		slog.String("user_id", actor.ID),
	)
	return nil
}

func (s *MembersService) authorize(ctx context.Context, actor *domain.User, empresaID string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	allowed, err := s.Permissions.HasPermission(ctx, actor.ID, PermissionInvite, empresaID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}
	return nil
}
