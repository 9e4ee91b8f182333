package service

import (
	"context"
	"errors"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
)

type RolesService struct {
	Store store.Store
}

// GetRoleByName fetches a role by its name.
func (s *RolesService) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	r, err := s.Store.Roles().GetRoleByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrInvalidRole
	}
	return r, err
}

// ListAll returns all roles, highest hierarchy level first.
func (s *RolesService) ListAll(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAll(ctx)
}

// ListAssignable returns the roles user may hand out in empresaID: those
// strictly below their own level.
func (s *RolesService) ListAssignable(ctx context.Context, perms *PermissionManager, user *domain.User, empresaID string) ([]domain.Role, error) {
	if user == nil {
		return nil, ErrUnauthenticated
	}
	level, err := perms.GetMaxHierarchyLevel(ctx, user.ID, empresaID)
	if err != nil {
		return nil, err
	}
	roles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		if r.HierarchyLevel < level {
			out = append(out, r)
		}
	}
	return out, nil
}
