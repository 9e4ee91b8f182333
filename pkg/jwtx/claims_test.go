package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "https://project.supabase.co/auth/v1",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("https://project.supabase.co/auth/v1"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("someone-else"), jwtx.ErrIssuer)
	})
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience: []string{"authenticated"},
		},
	}

	require.NoError(t, c.ValidateAudience([]string{"authenticated"}))
	require.NoError(t, c.ValidateAudience([]string{"anon", "authenticated"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"service_role"}), jwtx.ErrAudience)
}

func TestValidateSubject(t *testing.T) {
	ok := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Email: "ana@bar.es"}
	require.NoError(t, ok.ValidateSubject())

	anon := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	require.ErrorIs(t, anon.ValidateSubject(), jwtx.ErrInvalidClaim)

	missing := &jwtx.Claims{Email: "ana@bar.es"}
	require.ErrorIs(t, missing.ValidateSubject(), jwtx.ErrInvalidClaim)
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		}}
		require.NoError(t, c.ValidateExpiryWithLeeway(0))
	})

	t.Run("expired token", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		}}
		require.ErrorIs(t, c.ValidateExpiryWithLeeway(0), jwtx.ErrExpired)
	})

	t.Run("expired but within leeway", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
		}}
		require.NoError(t, c.ValidateExpiryWithLeeway(time.Minute))
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		require.ErrorIs(t, c.ValidateExpiryWithLeeway(0), jwtx.ErrNotYetValid)
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	c := jwtx.NewSessionClaims("user-1", "ana@bar.es", 0, "pulso", []string{jwtx.DefaultAudience}, now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "ana@bar.es", c.Email)
	require.Equal(t, now.Add(jwtx.DefaultSessionTTL), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
	require.NotEmpty(t, c.SessionID)
}
