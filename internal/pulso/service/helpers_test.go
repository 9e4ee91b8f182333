package service

import (
	"context"
	"testing"

	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newSeededStore returns an in-memory store holding the default catalog.
func newSeededStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	seeded, err := (&CatalogService{Store: st}).Seed(context.Background(), DefaultCatalog())
	require.NoError(t, err)
	require.True(t, seeded)
	return st
}

func newPermissionManager(st *sqlite.Store) *PermissionManager {
	return NewPermissionManager(st, cache.NewPermissionCache(cache.DefaultPermissionTTL))
}

func createUser(t *testing.T, st *sqlite.Store, email string) *domain.User {
	t.Helper()
	u := domain.User{ID: idx.New().String(), Email: email}
	require.NoError(t, st.Users().UpsertUser(context.Background(), u))
	return &u
}

func createEmpresa(t *testing.T, st *sqlite.Store, owner *domain.User, completed bool) domain.Empresa {
	t.Helper()
	e := domain.Empresa{
		ID:                             idx.New().String(),
		Nombre:                         "La Terraza",
		PropietarioEmail:               owner.Email,
		ConfiguracionInicialCompletada: completed,
	}
	require.NoError(t, st.Empresas().CreateEmpresa(context.Background(), e))
	return e
}

func assignRole(t *testing.T, st *sqlite.Store, user *domain.User, roleName, empresaID string) {
	t.Helper()
	ctx := context.Background()

	role, err := st.Roles().GetRoleByName(ctx, roleName)
	require.NoError(t, err)
	require.NoError(t, st.UserRoles().AssignRole(ctx, domain.UserRole{
		ID:         idx.New().String(),
		UserID:     user.ID,
		RoleID:     role.ID,
		EmpresaID:  empresaID,
		Active:     true,
		AssignedBy: user.ID,
	}))
}
