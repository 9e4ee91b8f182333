package service

import (
	"context"
	"testing"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/stretchr/testify/require"
)

func TestPermissionManager(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	m := newPermissionManager(st)

	owner := createUser(t, st, "ana@example.com")
	empresa := createEmpresa(t, st, owner, true)
	assignRole(t, st, owner, domain.RoleOwner, empresa.ID)

	other := createUser(t, st, "otro@example.com")
	otherCo := createEmpresa(t, st, other, true)

	sup := createUser(t, st, "sofia@example.com")
	assignRole(t, st, sup, domain.RoleSupervisor, empresa.ID)
	assignRole(t, st, sup, domain.RoleEmployee, otherCo.ID)

	t.Run("has permission is scoped by company", func(t *testing.T) {
		ok, err := m.HasPermission(ctx, sup.ID, PermChecklistCreate, empresa.ID)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = m.HasPermission(ctx, sup.ID, PermChecklistCreate, otherCo.ID)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = m.HasPermission(ctx, sup.ID, PermChecklistCreate, "")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("resource access", func(t *testing.T) {
		ok, err := m.CanAccessResource(ctx, sup.ID, "tickets", "view", "")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = m.CanAccessResource(ctx, sup.ID, "automation", "view", "")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("max hierarchy level", func(t *testing.T) {
		level, err := m.GetMaxHierarchyLevel(ctx, sup.ID, "")
		require.NoError(t, err)
		require.Equal(t, 4, level)

		level, err = m.GetMaxHierarchyLevel(ctx, sup.ID, otherCo.ID)
		require.NoError(t, err)
		require.Equal(t, 2, level)

		level, err = m.GetMaxHierarchyLevel(ctx, "nobody", "")
		require.NoError(t, err)
		require.Zero(t, level)
	})

	t.Run("can manage strictly lower levels", func(t *testing.T) {
		ok, err := m.CanManageUser(ctx, owner.ID, sup.ID, empresa.ID)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = m.CanManageUser(ctx, sup.ID, owner.ID, empresa.ID)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = m.CanManageUser(ctx, owner.ID, owner.ID, empresa.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("cache serves until cleared", func(t *testing.T) {
		perms, err := m.UserPermissions(ctx, sup.ID, empresa.ID)
		require.NoError(t, err)
		require.Len(t, perms, 4)

		assignRole(t, st, sup, domain.RoleBranchManager, empresa.ID)

		level, err := m.GetMaxHierarchyLevel(ctx, sup.ID, empresa.ID)
		require.NoError(t, err)
		require.Equal(t, 4, level)

		m.ClearCache(sup.ID)

		level, err = m.GetMaxHierarchyLevel(ctx, sup.ID, empresa.ID)
		require.NoError(t, err)
		require.Equal(t, 6, level)
		perms, err = m.UserPermissions(ctx, sup.ID, empresa.ID)
		require.NoError(t, err)
		require.Len(t, perms, 9)
	})
}
