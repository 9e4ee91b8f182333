package service

import (
	"context"
	"fmt"

	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"golang.org/x/sync/errgroup"
)

// PermissionChecker answers the three questions a gate asks. An empty
// empresaID spans every company the user belongs to.
type PermissionChecker interface {
	HasPermission(ctx context.Context, userID, permission, empresaID string) (bool, error)
	CanAccessResource(ctx context.Context, userID, resource, action, empresaID string) (bool, error)
	GetMaxHierarchyLevel(ctx context.Context, userID, empresaID string) (int, error)
}

// PermissionManager is the store-backed PermissionChecker. Role and
// permission sets are cached per user and company scope; direct permission
// checks always hit the store.
type PermissionManager struct {
	Store store.Store
	Cache cache.PermissionCache
}

var _ PermissionChecker = (*PermissionManager)(nil)

// NewPermissionManager wires a manager with its own cache.
func NewPermissionManager(s store.Store, c cache.PermissionCache) *PermissionManager {
	if c == nil {
		c = cache.NewPermissionCache(cache.DefaultPermissionTTL)
	}
	return &PermissionManager{Store: s, Cache: c}
}

// UserRoles returns the user's active role assignments with their permissions.
func (m *PermissionManager) UserRoles(ctx context.Context, userID, empresaID string) ([]domain.UserRole, error) {
	if roles, ok := m.Cache.GetRoles(userID, empresaID); ok {
		return roles, nil
	}

	roles, err := m.Store.UserRoles().ListActiveForUser(ctx, userID, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	m.Cache.SetRoles(userID, empresaID, roles)
	return roles, nil
}

// UserPermissions returns the distinct permissions granted by the user's
// active roles.
func (m *PermissionManager) UserPermissions(ctx context.Context, userID, empresaID string) ([]domain.Permission, error) {
	if perms, ok := m.Cache.GetPermissions(userID, empresaID); ok {
		return perms, nil
	}

	perms, err := m.Store.Permissions().ListForUser(ctx, userID, empresaID)
	if err != nil {
		return nil, fmt.Errorf("list user permissions: %w", err)
	}
	m.Cache.SetPermissions(userID, empresaID, perms)
	return perms, nil
}

func (m *PermissionManager) HasPermission(ctx context.Context, userID, permission, empresaID string) (bool, error) {
	ok, err := m.Store.Permissions().UserHasPermission(ctx, userID, permission, empresaID)
	if err != nil {
		return false, fmt.Errorf("check permission %q: %w", permission, err)
	}
	return ok, nil
}

func (m *PermissionManager) CanAccessResource(ctx context.Context, userID, resource, action, empresaID string) (bool, error) {
	perms, err := m.UserPermissions(ctx, userID, empresaID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p.Resource == resource && p.Action == action {
			return true, nil
		}
	}
	return false, nil
}

// GetMaxHierarchyLevel returns the highest level across active roles, or 0
// for a user with none.
func (m *PermissionManager) GetMaxHierarchyLevel(ctx context.Context, userID, empresaID string) (int, error) {
	roles, err := m.UserRoles(ctx, userID, empresaID)
	if err != nil {
		return 0, err
	}
	return domain.MaxHierarchyLevel(roles), nil
}

// CanManageUser reports whether manager outranks target in the company.
// Equal levels cannot manage each other.
func (m *PermissionManager) CanManageUser(ctx context.Context, managerID, targetID, empresaID string) (bool, error) {
	var managerLevel, targetLevel int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		managerLevel, err = m.GetMaxHierarchyLevel(gctx, managerID, empresaID)
		return err
	})
	g.Go(func() error {
		var err error
		targetLevel, err = m.GetMaxHierarchyLevel(gctx, targetID, empresaID)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}
	return managerLevel > targetLevel, nil
}

// ClearCache forgets everything cached for userID.
func (m *PermissionManager) ClearCache(userID string) {
	m.Cache.ClearUser(userID)
}

// ClearAll empties the cache.
func (m *PermissionManager) ClearAll() {
	m.Cache.ClearAll()
}
