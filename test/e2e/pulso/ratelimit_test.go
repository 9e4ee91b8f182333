//go:build e2e

package pulso_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/stretchr/testify/require"
)

// TestStrictRateLimit hammers invitation lookups, which are limited per IP.
func TestStrictRateLimit(t *testing.T) {
	baseURL := setupContainerWithDefaultRateLimits(t)
	client := pulsosdk.NewClient(baseURL, "")

	var limited bool
	for range 30 {
		_, err := client.GetInvitation(t.Context(), "unknown-token")
		var apiErr *pulsosdk.APIError
		require.True(t, errors.As(err, &apiErr))
		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, pulsosdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	}
	require.True(t, limited, "expected the strict limit to kick in")
}
