//go:build e2e

package pulso_test

import (
	"net/http"
	"testing"

	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/stretchr/testify/require"
)

// TestMembersAndMenu onboards an owner with one supervisor, checks both
// menus, then revokes the supervisor.
func TestMembersAndMenu(t *testing.T) {
	baseURL := setupContainer(t)
	ctx := t.Context()

	owner := signIn(t, baseURL, "ana@example.com")
	res := onboard(t, owner, pulsosdk.InviteeRequest{Email: "sofia@example.com", Role: "supervisor"})
	require.Equal(t, "Sucursal Principal", res.Sucursal.Nombre)
	require.Equal(t, "Bogotá", res.Sucursal.Ciudad)

	sofia := signIn(t, baseURL, "sofia@example.com")
	_, err := sofia.AcceptInvitation(ctx, res.Invitations[0].Token)
	require.NoError(t, err)

	ownerMenu, err := owner.Navigation(ctx, "")
	require.NoError(t, err)
	require.Equal(t, res.Empresa.ID, ownerMenu.EmpresaID)
	sofiaMenu, err := sofia.Navigation(ctx, "")
	require.NoError(t, err)
	require.Equal(t, res.Empresa.ID, sofiaMenu.EmpresaID)
	require.Less(t, len(sofiaMenu.Items), len(ownerMenu.Items))

	form, err := sofia.ChecklistForm(ctx, res.Empresa.ID)
	require.NoError(t, err)
	require.True(t, form.Editable)

	members, err := owner.ListMembers(ctx, res.Empresa.ID)
	require.NoError(t, err)
	require.Len(t, members.Members, 2)
	var sofiaID string
	for _, m := range members.Members {
		if m.Email == "sofia@example.com" {
			sofiaID = m.ID
			require.NotNil(t, m.SucursalID)
			require.Equal(t, res.Sucursal.ID, *m.SucursalID)
		}
	}
	require.NotEmpty(t, sofiaID)

	require.NoError(t, owner.RevokeMember(ctx, sofiaID))
	err = owner.RevokeMember(ctx, sofiaID)
	assertAPIError(t, err, http.StatusNotFound, pulsosdk.ErrorCodeNotFound)

	form, err = sofia.ChecklistForm(ctx, res.Empresa.ID)
	require.NoError(t, err)
	require.False(t, form.Editable)
}
