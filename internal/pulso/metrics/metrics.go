package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config sets the constant labels attached to every series.
type Config struct {
	ServiceName string
	Environment string
}

// Metrics holds the service's collectors on a dedicated registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	gateDecisions       *prometheus.CounterVec
	gateDuration        prometheus.Observer
	onboardingRedirects *prometheus.CounterVec
	navigationRedirects *prometheus.CounterVec
	invitations         *prometheus.CounterVec
	cacheSwept          prometheus.Counter
}

// New builds and registers the collectors.
func New(cfg Config) *Metrics {
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "pulso"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	m := &Metrics{registry: prometheus.NewRegistry()}

	m.gateDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "pulso_gate_decisions_total",
		Help:        "Permission gate decisions by outcome and reason.",
		ConstLabels: constLabels,
	}, []string{"outcome", "reason"})
	gateDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "pulso_gate_evaluation_seconds",
		Help:        "Permission gate evaluation latency, including store lookups.",
		Buckets:     []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		ConstLabels: constLabels,
	})
	m.gateDuration = gateDuration
	m.onboardingRedirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "pulso_onboarding_redirects_total",
		Help:        "Onboarding redirector outcomes by destination.",
		ConstLabels: constLabels,
	}, []string{"destination"})
	m.navigationRedirects = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "pulso_navigation_redirects_total",
		Help:        "Page navigation redirects by target.",
		ConstLabels: constLabels,
	}, []string{"target"})
	m.invitations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "pulso_invitations_total",
		Help:        "Invitation lifecycle events.",
		ConstLabels: constLabels,
	}, []string{"event"})
	m.cacheSwept = prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "pulso_permission_cache_swept_total",
		Help:        "Expired permission cache entries removed by housekeeping.",
		ConstLabels: constLabels,
	})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.gateDecisions,
		gateDuration,
		m.onboardingRedirects,
		m.navigationRedirects,
		m.invitations,
		m.cacheSwept,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) GateDecision(allowed bool, reason string, took time.Duration) {
	if m == nil {
		return
	}
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	m.gateDecisions.WithLabelValues(outcome, reason).Inc()
	m.gateDuration.Observe(took.Seconds())
}

// OnboardingRedirect records a redirector outcome. Destinations carrying a
// token are collapsed to their route to keep cardinality low.
func (m *Metrics) OnboardingRedirect(destination string) {
	if m == nil {
		return
	}
	m.onboardingRedirects.WithLabelValues(routeLabel(destination)).Inc()
}

func (m *Metrics) NavigationRedirect(target string) {
	if m == nil {
		return
	}
	m.navigationRedirects.WithLabelValues(routeLabel(target)).Inc()
}

func (m *Metrics) InvitationEvent(event string) {
	if m == nil {
		return
	}
	m.invitations.WithLabelValues(event).Inc()
}

func (m *Metrics) CacheSwept(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.cacheSwept.Add(float64(n))
}

func routeLabel(path string) string {
	switch {
	case path == "":
		return "wizard"
	case strings.HasPrefix(path, "/accept-invitation/"):
		return "/accept-invitation"
	}
	return path
}
