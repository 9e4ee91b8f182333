package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestGateDecisionCounts(t *testing.T) {
	m := New(Config{ServiceName: "pulso", Environment: "test"})

	m.GateDecision(true, "allowed", time.Millisecond)
	m.GateDecision(false, "error", time.Millisecond)
	m.GateDecision(false, "error", time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(m.gateDecisions.WithLabelValues("allowed", "allowed")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.gateDecisions.WithLabelValues("denied", "error")))
}

func TestRedirectLabelsCollapseTokens(t *testing.T) {
	m := New(Config{})

	m.OnboardingRedirect("/accept-invitation/abc")
	m.OnboardingRedirect("/accept-invitation/def")
	m.OnboardingRedirect("")
	m.NavigationRedirect("/login")

	require.Equal(t, 2.0, testutil.ToFloat64(m.onboardingRedirects.WithLabelValues("/accept-invitation")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.onboardingRedirects.WithLabelValues("wizard")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.navigationRedirects.WithLabelValues("/login")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.GateDecision(true, "allowed", 0)
	m.OnboardingRedirect("/dashboard")
	m.NavigationRedirect("/login")
	m.InvitationEvent("created")
	m.CacheSwept(3)
	require.Nil(t, m.Registry())
}

func TestHandlerExposesSeries(t *testing.T) {
	m := New(Config{ServiceName: "pulso", Environment: "test"})
	m.InvitationEvent("accepted")
	m.CacheSwept(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `pulso_invitations_total{env="test",event="accepted",service="pulso"} 1`)
	require.Contains(t, rec.Body.String(), "pulso_permission_cache_swept_total")
}
