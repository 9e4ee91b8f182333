package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand(t *testing.T) {
	secret := strings.Repeat("z", jwtx.MinSecretLength)
	t.Setenv("PULSO_JWT_SECRET", secret)
	t.Setenv("PULSO_JWT_ISSUER", "")
	t.Setenv("PULSO_JWT_AUDIENCE", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"token", "--sub", "u-1", "--email", "ana@example.com"})
	require.NoError(t, root.Execute())

	hs, err := jwtx.NewHS256([]byte(secret), jwtx.VerifyOptions{Audience: []string{jwtx.DefaultAudience}})
	require.NoError(t, err)
	claims, err := hs.Verify(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.Subject)
	require.Equal(t, "ana@example.com", claims.Email)
}

func TestTokenCommandRequiresEmail(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"token"})
	require.Error(t, root.Execute())
}
