package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// SessionCookie is the cookie the web client stores the provider access token in.
const SessionCookie = "sb-access-token"

// SessionResolver turns a raw session token into the caller. A nil principal
// with a nil error means "no session".
type SessionResolver func(ctx context.Context, token string) (*Principal, error)

// SessionToken extracts the session token from the Authorization header or
// the session cookie, header first.
func SessionToken(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

// SessionMiddleware resolves the session, if any, and stores the principal in
// the request context. It never rejects: invalid or missing sessions simply
// leave the request anonymous, RequireUser decides what that means.
func SessionMiddleware(resolve SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			p, err := resolve(ctx, token)
			if err != nil {
				slogx.FromContext(ctx).Warn("session rejected", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx = WithPrincipal(ctx, *p)
			ctx = slogx.WithAttrs(ctx, "user_id", p.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects anonymous requests with an RFC 6750 bearer error.
func RequireUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := PrincipalFromContext(r.Context()); !ok {
				writeBearerError(w, "missing or invalid session")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
