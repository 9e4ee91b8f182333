package service

import (
	"context"
	"testing"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestCatalogSeed(t *testing.T) {
	ctx := context.Background()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &CatalogService{Store: st}

	seeded, err := svc.IsSeeded(ctx)
	require.NoError(t, err)
	require.False(t, seeded)

	wrote, err := svc.Seed(ctx, DefaultCatalog())
	require.NoError(t, err)
	require.True(t, wrote)

	wrote, err = svc.Seed(ctx, DefaultCatalog())
	require.NoError(t, err)
	require.False(t, wrote)

	roles, err := (&RolesService{Store: st}).ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, roles, 5)
	require.Equal(t, domain.RoleOwner, roles[0].Name)
	require.Equal(t, domain.RoleEmployee, roles[4].Name)

	p, err := st.Permissions().GetPermissionByName(ctx, PermDashboardHoreca)
	require.NoError(t, err)
	require.Equal(t, "dashboard.horeca", p.Resource)
	require.Equal(t, "view", p.Action)
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateCatalog(DefaultCatalog()))

	noOwner := domain.Catalog{Roles: []domain.RoleDefinition{{Name: domain.RoleEmployee, HierarchyLevel: 1}}}
	require.ErrorIs(t, validateCatalog(noOwner), ErrCatalogInvalid)

	unknownPerm := domain.Catalog{Roles: []domain.RoleDefinition{
		{Name: domain.RoleOwner, HierarchyLevel: 10, Permissions: []string{"nope"}},
	}}
	require.ErrorIs(t, validateCatalog(unknownPerm), ErrCatalogInvalid)

	zeroLevel := domain.Catalog{Roles: []domain.RoleDefinition{{Name: domain.RoleOwner}}}
	require.ErrorIs(t, validateCatalog(zeroLevel), ErrCatalogInvalid)
}

func TestRolesListAssignable(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	perms := newPermissionManager(st)
	svc := &RolesService{Store: st}

	owner := createUser(t, st, "ana@example.com")
	empresa := createEmpresa(t, st, owner, true)
	assignRole(t, st, owner, domain.RoleBranchManager, empresa.ID)

	roles, err := svc.ListAssignable(ctx, perms, owner, empresa.ID)
	require.NoError(t, err)

	var names []string
	for _, r := range roles {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{domain.RoleSupervisor, domain.RoleEmployee}, names)

	_, err = svc.GetRoleByName(ctx, "chef")
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.ListAssignable(ctx, perms, nil, empresa.ID)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
