//go:build e2e

package pulso_test

import (
	"net/http"
	"testing"

	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/stretchr/testify/require"
)

func TestPermissionGate(t *testing.T) {
	baseURL := setupContainer(t)
	ctx := t.Context()

	owner := signIn(t, baseURL, "ana@example.com")
	empresa := onboard(t, owner).Empresa

	t.Run("anonymous", func(t *testing.T) {
		got, err := pulsosdk.NewClient(baseURL, "").CheckPermission(ctx, pulsosdk.CheckRequest{Permission: "checklist.view"})
		require.NoError(t, err)
		require.False(t, got.Allowed)
		require.Equal(t, "unauthenticated", got.Reason)
	})

	t.Run("guard follows criteria", func(t *testing.T) {
		var published []pulsosdk.Decision
		guard := pulsosdk.NewGuard(owner, func(d pulsosdk.Decision) { published = append(published, d) })

		d, err := guard.Update(ctx, pulsosdk.CheckRequest{Permission: "automation.create", EmpresaID: empresa.ID})
		require.NoError(t, err)
		require.Equal(t, pulsosdk.Allowed, d.State)

		d, err = guard.Update(ctx, pulsosdk.CheckRequest{Permission: "does.not.exist", EmpresaID: empresa.ID})
		require.NoError(t, err)
		require.Equal(t, pulsosdk.Denied, d.State)
		require.Equal(t, "missing_permission", d.Reason)
		require.NotEmpty(t, published)
	})

	t.Run("checklist drafts need checklist.create", func(t *testing.T) {
		stranger := signIn(t, baseURL, "pepe@example.com")
		_, err := stranger.SubmitChecklistDraft(ctx, pulsosdk.ChecklistDraftRequest{Nombre: "Cierre", Categoria: "seguridad"})
		assertAPIError(t, err, http.StatusForbidden, pulsosdk.ErrorCodeAccessDenied)

		draft, err := owner.SubmitChecklistDraft(ctx, pulsosdk.ChecklistDraftRequest{Nombre: " Cierre ", Categoria: "Seguridad"})
		require.NoError(t, err)
		require.Equal(t, "Cierre", draft.Nombre)
		require.Equal(t, "seguridad", draft.Categoria)
	})
}
