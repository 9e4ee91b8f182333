package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// requirePermission renders next when the gate allows the caller, fallback
// when it does not, or the standard access_denied 403 without a fallback.
// Criteria without a company are scoped by the empresa_id query parameter.
func (r *Router) requirePermission(c domain.Criteria, fallback http.Handler) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			criteria := c
			if criteria.EmpresaID == "" {
				criteria.EmpresaID = req.URL.Query().Get("empresa_id")
			}

			d := r.Gate.Evaluate(req.Context(), userFromRequest(req), criteria)
			if d.Allowed {
				next.ServeHTTP(w, req)
				return
			}

			slogx.FromContext(req.Context()).Info("gate denied request",
				"path", req.URL.Path,
				"reason", d.Reason,
			)
			if fallback != nil {
				fallback.ServeHTTP(w, req)
				return
			}
			pulsosdk.ErrAccessDenied.WriteError(w)
		})
	}
}

// navigate applies the page navigation policy, answering with a 303 when
// the caller belongs elsewhere.
func (r *Router) navigate() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			nav := r.NavigationService.Route(req.Context(), userFromRequest(req), req.URL.Path)
			if !nav.Proceed() {
				httpx.SeeOther(w, req, nav.Redirect)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// userFromRequest returns the signed-in user, or nil.
func userFromRequest(r *http.Request) *domain.User {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		return nil
	}
	return &domain.User{ID: p.UserID, Email: p.Email}
}

// empresaIDParam reads the optional empresa_id query parameter. ok is false
// when it is present but not a valid id.
func empresaIDParam(r *http.Request) (id string, ok bool) {
	raw := r.URL.Query().Get("empresa_id")
	if raw == "" {
		return "", true
	}
	parsed, err := idx.Parse(raw)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
