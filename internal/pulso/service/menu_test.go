package service

import (
	"context"
	"testing"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/stretchr/testify/require"
)

func menuTitles(m Menu) []string {
	titles := make([]string, len(m.Items))
	for i, item := range m.Items {
		titles[i] = item.Title
	}
	return titles
}

func TestNavigationMenu(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	svc := &NavigationService{Store: st, Permissions: newPermissionManager(st), Policy: DefaultRoutePolicy()}

	owner := createUser(t, st, "ana@example.com")
	empresa := createEmpresa(t, st, owner, true)
	assignRole(t, st, owner, domain.RoleOwner, empresa.ID)

	gm := createUser(t, st, "marta@example.com")
	assignRole(t, st, gm, domain.RoleGeneralManager, empresa.ID)
	manager := createUser(t, st, "luis@example.com")
	assignRole(t, st, manager, domain.RoleBranchManager, empresa.ID)
	supervisor := createUser(t, st, "sofia@example.com")
	assignRole(t, st, supervisor, domain.RoleSupervisor, empresa.ID)
	employee := createUser(t, st, "pablo@example.com")
	assignRole(t, st, employee, domain.RoleEmployee, empresa.ID)

	tests := []struct {
		name string
		user *domain.User
		want []string
	}{
		{"owner sees everything", owner, []string{
			"Dashboard", "Dashboard HORECA", "Checklists", "Automatización", "Inventario", "Tickets",
			"Flujos", "Reportes", "Usuarios", "Auditoría", "Configuración",
		}},
		{"general manager lacks company settings", gm, []string{
			"Dashboard", "Dashboard HORECA", "Checklists", "Automatización", "Inventario", "Tickets",
			"Flujos", "Reportes", "Usuarios", "Auditoría",
		}},
		// audit.view is granted but level 6 is below the item's minimum.
		{"branch manager", manager, []string{
			"Dashboard", "Dashboard HORECA", "Checklists", "Automatización", "Inventario", "Tickets",
			"Flujos", "Reportes",
		}},
		{"supervisor", supervisor, []string{"Dashboard", "Checklists", "Inventario", "Tickets"}},
		{"employee", employee, []string{"Dashboard", "Checklists"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := svc.Menu(ctx, tc.user, empresa.ID)
			require.NoError(t, err)
			require.Equal(t, empresa.ID, m.EmpresaID)
			require.Equal(t, tc.want, menuTitles(m))

			// Every listed entry opens for the same user.
			nav := &NavigationService{Store: st, Permissions: svc.Permissions, Policy: DefaultRoutePolicy()}
			for _, item := range m.Items {
				require.True(t, nav.Route(ctx, tc.user, item.Href).Proceed(), item.Href)
			}
		})
	}

	t.Run("company defaults to the owned one then the membership", func(t *testing.T) {
		m, err := svc.Menu(ctx, owner, "")
		require.NoError(t, err)
		require.Equal(t, empresa.ID, m.EmpresaID)

		m, err = svc.Menu(ctx, supervisor, "")
		require.NoError(t, err)
		require.Equal(t, empresa.ID, m.EmpresaID)
		require.Len(t, m.Items, 4)
	})

	t.Run("roles elsewhere do not count", func(t *testing.T) {
		other := createUser(t, st, "otro@example.com")
		otherCo := createEmpresa(t, st, other, true)

		m, err := svc.Menu(ctx, owner, otherCo.ID)
		require.NoError(t, err)
		require.Empty(t, m.Items)
	})

	t.Run("no company no menu", func(t *testing.T) {
		m, err := svc.Menu(ctx, createUser(t, st, "new@example.com"), "")
		require.NoError(t, err)
		require.Empty(t, m.EmpresaID)
		require.Empty(t, m.Items)

		_, err = svc.Menu(ctx, nil, empresa.ID)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("custom items", func(t *testing.T) {
		custom := &NavigationService{Store: st, Permissions: svc.Permissions, Items: []MenuItem{
			{Title: "Solo gerencia", Href: "/dashboard/flows", MinHierarchyLevel: 8},
		}}
		m, err := custom.Menu(ctx, manager, empresa.ID)
		require.NoError(t, err)
		require.Empty(t, m.Items)
		m, err = custom.Menu(ctx, gm, empresa.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"Solo gerencia"}, menuTitles(m))
	})
}
