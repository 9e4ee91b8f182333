package service

import (
	"context"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/stretchr/testify/require"
)

func inviteDirect(t *testing.T, st *sqlite.Store, inviter *domain.User, empresaID, email, token string, expiresIn time.Duration) domain.Invitation {
	t.Helper()
	ctx := context.Background()

	role, err := st.Roles().GetRoleByName(ctx, domain.RoleBranchManager)
	require.NoError(t, err)
	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		EmpresaID: empresaID,
		RoleID:    role.ID,
		Token:     token,
		Status:    domain.InvitationPending,
		InvitedBy: inviter.ID,
		ExpiresAt: time.Now().UTC().Add(expiresIn),
	}
	require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))
	return inv
}

func TestOnboardingResolve(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	svc := &OnboardingService{Store: st}

	owner := createUser(t, st, "ana@example.com")
	empresa := createEmpresa(t, st, owner, true)

	t.Run("anonymous goes to login", func(t *testing.T) {
		require.Equal(t, Redirect{Destination: PathLogin}, svc.Resolve(ctx, nil))
	})

	t.Run("owner goes to dashboard", func(t *testing.T) {
		require.Equal(t, Redirect{Destination: PathDashboard}, svc.Resolve(ctx, owner))
	})

	t.Run("owner lookup ignores email case", func(t *testing.T) {
		shouty := &domain.User{ID: owner.ID, Email: "ANA@Example.com"}
		require.Equal(t, PathDashboard, svc.Resolve(ctx, shouty).Destination)
	})

	t.Run("invitee goes to their invitation", func(t *testing.T) {
		invitee := createUser(t, st, "luis@example.com")
		inviteDirect(t, st, owner, empresa.ID, invitee.Email, "tok-luis", time.Hour)

		require.Equal(t, Redirect{Destination: "/accept-invitation/tok-luis"}, svc.Resolve(ctx, invitee))
	})

	t.Run("expired invitation shows the wizard", func(t *testing.T) {
		late := createUser(t, st, "marta@example.com")
		inviteDirect(t, st, owner, empresa.ID, late.Email, "tok-marta", -time.Minute)

		r := svc.Resolve(ctx, late)
		require.True(t, r.ShowWizard)
		require.Empty(t, r.Destination)
		require.Equal(t, late, r.User)
	})

	t.Run("company wins over an invitation", func(t *testing.T) {
		both := createUser(t, st, "pablo@example.com")
		createEmpresa(t, st, both, false)
		inviteDirect(t, st, owner, empresa.ID, both.Email, "tok-pablo", time.Hour)

		require.Equal(t, PathDashboard, svc.Resolve(ctx, both).Destination)
	})

	t.Run("new user sees the wizard", func(t *testing.T) {
		fresh := createUser(t, st, "new@example.com")
		require.Equal(t, Redirect{ShowWizard: true, User: fresh}, svc.Resolve(ctx, fresh))
	})
}

func TestOnboardingResolveLookupFailureShowsWizard(t *testing.T) {
	st := newSeededStore(t)
	user := createUser(t, st, "ana@example.com")
	require.NoError(t, st.Close())

	r := (&OnboardingService{Store: st}).Resolve(context.Background(), user)
	require.True(t, r.ShowWizard)
	require.Empty(t, r.Destination)
}
