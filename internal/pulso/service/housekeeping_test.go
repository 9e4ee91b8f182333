package service

import (
	"context"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingRunOnce(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)
	owner := createUser(t, st, "ana@example.com")
	empresa := createEmpresa(t, st, owner, true)
	inviteDirect(t, st, owner, empresa.ID, "late@example.com", "tok-late", -time.Minute)

	c := cache.NewPermissionCache(time.Nanosecond)
	c.SetRoles("u-1", "", []domain.UserRole{})
	time.Sleep(time.Millisecond)

	m := metrics.New(metrics.Config{ServiceName: "pulso-test"})
	invitations := &InvitationService{Store: st, Metrics: m}
	hk := NewHousekeepingService(invitations, c, m, slogx.Discard(), 0)
	require.Equal(t, time.Hour, hk.Interval)

	hk.RunOnce(ctx)

	inv, err := st.Invitations().GetInvitationByToken(ctx, "tok-late")
	require.NoError(t, err)
	require.Equal(t, domain.InvitationExpired, inv.Status)
	require.Equal(t, 1.0, invitationEvents(t, m, "expired"))

	_, ok := c.GetRoles("u-1", "")
	require.False(t, ok)
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newSeededStore(t)
	hk := NewHousekeepingService(&InvitationService{Store: st}, nil, nil, slogx.Discard(), time.Hour)

	hk.Start()
	hk.Stop()
}
