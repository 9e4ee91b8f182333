package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type SessionHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current user
//	@Description	Returns the user behind the session token.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	pulsosdk.UserResponse	"id, email"
//	@Failure		401	{object}	pulsosdk.ErrorResponse	"missing or invalid session"
//	@Security		BearerAuth
//	@Router			/v1/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := httpx.PrincipalFromContext(r.Context())
	httpx.WriteJSON(w, http.StatusOK, pulsosdk.UserResponse{
		ID:    p.UserID,
		Email: p.Email,
	})
}
