package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSessionCurrentUser(t *testing.T) {
	ctx := context.Background()
	st := newSeededStore(t)

	secret := []byte(strings.Repeat("s", jwtx.MinSecretLength))
	hs, err := jwtx.NewHS256(secret, jwtx.VerifyOptions{Audience: []string{jwtx.DefaultAudience}})
	require.NoError(t, err)
	svc := &SessionService{Store: st, Verifier: hs}

	sign := func(sub, email string, ttl time.Duration, now time.Time) string {
		tok, err := hs.Sign(jwtx.NewSessionClaims(sub, email, ttl, "", []string{jwtx.DefaultAudience}, now))
		require.NoError(t, err)
		return tok
	}

	t.Run("no token is no user", func(t *testing.T) {
		u, err := svc.CurrentUser(ctx, "")
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("valid token records the user", func(t *testing.T) {
		u, err := svc.CurrentUser(ctx, sign("u-1", "Ana@Example.com", time.Hour, time.Now()))
		require.NoError(t, err)
		require.Equal(t, "u-1", u.ID)
		require.Equal(t, "ana@example.com", u.Email)

		got, err := svc.GetUserByID(ctx, "u-1")
		require.NoError(t, err)
		require.Equal(t, "ana@example.com", got.Email)
	})

	t.Run("expired token", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, sign("u-1", "ana@example.com", time.Minute, time.Now().Add(-time.Hour)))
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, "not.a.jwt")
		require.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("unknown user id", func(t *testing.T) {
		_, err := svc.GetUserByID(ctx, "u-404")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})
}
