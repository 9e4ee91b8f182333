package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

type fixture struct {
	owner   domain.User
	empresa domain.Empresa
	manager domain.Role
	view    domain.Permission
	create  domain.Permission
}

func seed(t *testing.T, s *sqlite.Store) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{
		owner: domain.User{ID: idx.New().String(), Email: "ana@example.com"},
		manager: domain.Role{
			ID: idx.New().String(), Name: domain.RoleBranchManager,
			DisplayName: "Gerente de Sucursal", HierarchyLevel: 6,
		},
		view: domain.Permission{
			ID: idx.New().String(), Name: "checklist.view",
			Category: "checklists", Resource: "checklist", Action: "view", CriticalityLevel: 1,
		},
		create: domain.Permission{
			ID: idx.New().String(), Name: "checklist.create",
			Category: "checklists", Resource: "checklist", Action: "create", CriticalityLevel: 2,
		},
	}
	f.empresa = domain.Empresa{
		ID: idx.New().String(), Nombre: "La Terraza",
		PropietarioEmail: f.owner.Email, ConfiguracionInicialCompletada: true,
	}

	require.NoError(t, s.Users().UpsertUser(ctx, f.owner))
	require.NoError(t, s.Empresas().CreateEmpresa(ctx, f.empresa))
	require.NoError(t, s.Roles().CreateRole(ctx, f.manager))
	require.NoError(t, s.Permissions().CreatePermission(ctx, f.view))
	require.NoError(t, s.Permissions().CreatePermission(ctx, f.create))
	require.NoError(t, s.Roles().GrantPermission(ctx, f.manager.ID, f.view.ID))
	require.NoError(t, s.Roles().GrantPermission(ctx, f.manager.ID, f.view.ID)) // idempotent
	return f
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())

	version, dirty, err := s.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.EqualValues(t, 2, version)
}

func TestUsersUpsert(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	u := domain.User{ID: idx.New().String(), Email: "old@example.com"}
	require.NoError(t, s.Users().UpsertUser(ctx, u))

	u.Email = "new@example.com"
	require.NoError(t, s.Users().UpsertUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestEmpresaOnePerOwner(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	f := seed(t, s)

	got, err := s.Empresas().GetEmpresaByOwnerEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	require.Equal(t, f.empresa.ID, got.ID)
	require.True(t, got.ConfiguracionInicialCompletada)

	err = s.Empresas().CreateEmpresa(ctx, domain.Empresa{
		ID: idx.New().String(), Nombre: "Otra", PropietarioEmail: f.owner.Email,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Empresas().GetEmpresaByOwnerEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestInvitationLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	f := seed(t, s)
	now := time.Now().UTC()

	inv := domain.Invitation{
		ID: idx.New().String(), Email: "luis@example.com", EmpresaID: f.empresa.ID,
		RoleID: f.manager.ID, Token: "tok-1", InvitedBy: f.owner.ID, ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, s.Invitations().CreateInvitation(ctx, inv))

	t.Run("one pending invitation per email", func(t *testing.T) {
		dup := inv
		dup.ID, dup.Token = idx.New().String(), "tok-2"
		require.ErrorIs(t, s.Invitations().CreateInvitation(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookups", func(t *testing.T) {
		got, err := s.Invitations().GetPendingInvitationByEmail(ctx, "luis@example.com")
		require.NoError(t, err)
		require.Equal(t, "tok-1", got.Token)
		require.Equal(t, domain.InvitationPending, got.Status)

		got, err = s.Invitations().GetInvitationByToken(ctx, "tok-1")
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)

		list, err := s.Invitations().ListInvitationsByEmpresa(ctx, f.empresa.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("accept only once", func(t *testing.T) {
		require.NoError(t, s.Invitations().MarkInvitationAccepted(ctx, inv.ID, now))
		require.ErrorIs(t, s.Invitations().MarkInvitationAccepted(ctx, inv.ID, now), store.ErrNotFound)

		got, err := s.Invitations().GetInvitationByToken(ctx, "tok-1")
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, got.Status)
		require.NotNil(t, got.AcceptedAt)

		_, err = s.Invitations().GetPendingInvitationByEmail(ctx, "luis@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expire stale", func(t *testing.T) {
		stale := domain.Invitation{
			ID: idx.New().String(), Email: "marta@example.com", EmpresaID: f.empresa.ID,
			RoleID: f.manager.ID, Token: "tok-3", InvitedBy: f.owner.ID, ExpiresAt: now.Add(-time.Minute),
		}
		require.NoError(t, s.Invitations().CreateInvitation(ctx, stale))

		n, err := s.Invitations().ExpireInvitations(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		got, err := s.Invitations().GetInvitationByToken(ctx, "tok-3")
		require.NoError(t, err)
		require.Equal(t, domain.InvitationExpired, got.Status)
		require.ErrorIs(t, s.Invitations().RevokeInvitation(ctx, stale.ID), store.ErrNotFound)
	})

	t.Run("expire lapsed invitation for one email", func(t *testing.T) {
		for _, inv := range []domain.Invitation{
			{ID: idx.New().String(), Email: "pablo@example.com", Token: "tok-4", ExpiresAt: now.Add(-time.Minute)},
			{ID: idx.New().String(), Email: "rosa@example.com", Token: "tok-5", ExpiresAt: now.Add(-time.Minute)},
			{ID: idx.New().String(), Email: "ines@example.com", Token: "tok-6", ExpiresAt: now.Add(time.Hour)},
		} {
			inv.EmpresaID, inv.RoleID, inv.InvitedBy = f.empresa.ID, f.manager.ID, f.owner.ID
			require.NoError(t, s.Invitations().CreateInvitation(ctx, inv))
		}

		n, err := s.Invitations().ExpireInvitationsForEmail(ctx, "pablo@example.com", now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		// Other emails and live invitations are untouched.
		n, err = s.Invitations().ExpireInvitationsForEmail(ctx, "ines@example.com", now)
		require.NoError(t, err)
		require.Zero(t, n)
		got, err := s.Invitations().GetInvitationByToken(ctx, "tok-5")
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, got.Status)

		// The slot is free again.
		require.NoError(t, s.Invitations().CreateInvitation(ctx, domain.Invitation{
			ID: idx.New().String(), Email: "pablo@example.com", EmpresaID: f.empresa.ID,
			RoleID: f.manager.ID, Token: "tok-7", InvitedBy: f.owner.ID, ExpiresAt: now.Add(time.Hour),
		}))
	})
}

func TestSucursales(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	f := seed(t, s)

	principal := domain.Sucursal{
		ID: idx.New().String(), EmpresaID: f.empresa.ID, Nombre: domain.DefaultSucursalNombre,
		Ciudad: "Sevilla", NumeroMesas: 20, CapacidadPersonas: 80, EsPrincipal: true, Activa: true,
	}
	centro := domain.Sucursal{ID: idx.New().String(), EmpresaID: f.empresa.ID, Nombre: "Centro", Activa: true}
	require.NoError(t, s.Sucursales().CreateSucursal(ctx, centro))
	require.NoError(t, s.Sucursales().CreateSucursal(ctx, principal))

	got, err := s.Sucursales().GetSucursalByID(ctx, principal.ID)
	require.NoError(t, err)
	require.Equal(t, f.empresa.ID, got.EmpresaID)
	require.Equal(t, 20, got.NumeroMesas)
	require.Equal(t, 80, got.CapacidadPersonas)
	require.True(t, got.EsPrincipal)

	list, err := s.Sucursales().ListSucursalesByEmpresa(ctx, f.empresa.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, principal.ID, list[0].ID)

	second := principal
	second.ID = idx.New().String()
	require.ErrorIs(t, s.Sucursales().CreateSucursal(ctx, second), store.ErrAlreadyExists)

	_, err = s.Sucursales().GetSucursalByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserRolesAndPermissions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	f := seed(t, s)

	other := domain.Empresa{ID: idx.New().String(), Nombre: "El Puerto", PropietarioEmail: "otro@example.com"}
	require.NoError(t, s.Empresas().CreateEmpresa(ctx, other))

	assignment := domain.UserRole{
		ID: idx.New().String(), UserID: f.owner.ID, RoleID: f.manager.ID,
		EmpresaID: f.empresa.ID, AssignedBy: f.owner.ID,
	}
	require.NoError(t, s.UserRoles().AssignRole(ctx, assignment))

	dup := assignment
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.UserRoles().AssignRole(ctx, dup), store.ErrAlreadyExists)

	roles, err := s.UserRoles().ListActiveForUser(ctx, f.owner.ID, "")
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, domain.RoleBranchManager, roles[0].RoleName)
	require.Equal(t, 6, roles[0].HierarchyLevel)
	require.Len(t, roles[0].Permissions, 1)
	require.Equal(t, "checklist.view", roles[0].Permissions[0].Name)

	roles, err = s.UserRoles().ListActiveForUser(ctx, f.owner.ID, other.ID)
	require.NoError(t, err)
	require.Empty(t, roles)

	perms, err := s.Permissions().ListForUser(ctx, f.owner.ID, f.empresa.ID)
	require.NoError(t, err)
	require.Len(t, perms, 1)

	ok, err := s.Permissions().UserHasPermission(ctx, f.owner.ID, "checklist.view", "")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Permissions().UserHasPermission(ctx, f.owner.ID, "checklist.create", f.empresa.ID)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = s.Permissions().UserHasPermission(ctx, f.owner.ID, "checklist.view", other.ID)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := s.UserRoles().GetUserRole(ctx, assignment.ID)
	require.NoError(t, err)
	require.Equal(t, f.owner.ID, got.UserID)
	require.Equal(t, domain.RoleBranchManager, got.RoleName)
	require.True(t, got.Active)

	members, err := s.UserRoles().ListMembers(ctx, f.empresa.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "ana@example.com", members[0].UserEmail)
	members, err = s.UserRoles().ListMembers(ctx, other.ID)
	require.NoError(t, err)
	require.Empty(t, members)

	require.NoError(t, s.UserRoles().DeactivateRole(ctx, assignment.ID))
	require.ErrorIs(t, s.UserRoles().DeactivateRole(ctx, assignment.ID), store.ErrNotFound)
	roles, err = s.UserRoles().ListActiveForUser(ctx, f.owner.ID, "")
	require.NoError(t, err)
	require.Empty(t, roles)

	got, err = s.UserRoles().GetUserRole(ctx, assignment.ID)
	require.NoError(t, err)
	require.False(t, got.Active)
	members, err = s.UserRoles().ListMembers(ctx, f.empresa.ID)
	require.NoError(t, err)
	require.Empty(t, members)

	_, err = s.UserRoles().GetUserRole(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().UpsertUser(ctx, domain.User{ID: "u-tx", Email: "tx@example.com"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Users().GetUserByID(ctx, "u-tx")
	require.ErrorIs(t, err, store.ErrNotFound)
}
