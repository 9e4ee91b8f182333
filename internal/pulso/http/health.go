package http

import (
	"net/http"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// LivezHandler godoc
//
//	@Summary		Liveness check
//	@Description	Answers 200 while the process is up, with uptime and build version
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pulsosdk.HealthResponse
//	@Router			/livez [get].
func LivezHandler(started time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, healthResponse(started, version, statusOK, nil))
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness check
//	@Description	Answers 200 once the database is reachable and the role catalog is seeded, 503 otherwise
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	pulsosdk.HealthResponse
//	@Failure		503	{object}	pulsosdk.HealthResponse
//	@Router			/readyz [get].
func ReadyzHandler(started time.Time, version string, st store.Store, catalog *service.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &pulsosdk.HealthChecks{Database: statusOK, Catalog: statusOK}
		ready := true

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			ready = false
		}
		// Every gate denies until roles exist.
		if seeded, err := catalog.IsSeeded(r.Context()); err != nil || !seeded {
			checks.Catalog = "error: role catalog not seeded"
			ready = false
		}

		if !ready {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse(started, version, statusDegraded, checks))
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthResponse(started, version, statusOK, checks))
	}
}

func healthResponse(started time.Time, version, status string, checks *pulsosdk.HealthChecks) pulsosdk.HealthResponse {
	return pulsosdk.HealthResponse{
		Status:  status,
		Uptime:  time.Since(started).Round(time.Second).String(),
		Version: version,
		Checks:  checks,
	}
}
