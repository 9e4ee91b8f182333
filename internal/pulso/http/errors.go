package http

import (
	"errors"
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// writeServiceError maps service sentinels to API errors. Anything unknown
// is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var apiErr *pulsosdk.APIError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		apiErr = pulsosdk.ErrInvalidToken
	case errors.Is(err, service.ErrForbidden):
		apiErr = pulsosdk.ErrAccessDenied
	case errors.Is(err, service.ErrInvalidCompany),
		errors.Is(err, service.ErrInvalidInvitation),
		errors.Is(err, service.ErrInvalidChecklist):
		apiErr = pulsosdk.NewAPIError(http.StatusBadRequest, pulsosdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrInvalidRole):
		apiErr = pulsosdk.NewAPIError(http.StatusBadRequest, pulsosdk.ErrorCodeInvalidRequest, "unknown role")
	case errors.Is(err, service.ErrCompanyExists),
		errors.Is(err, service.ErrInvitationPending),
		errors.Is(err, service.ErrInvitationNotPending):
		apiErr = pulsosdk.NewAPIError(http.StatusConflict, pulsosdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvitationNotFound):
		apiErr = pulsosdk.NewAPIError(http.StatusNotFound, pulsosdk.ErrorCodeNotFound, "invitation not found")
	case errors.Is(err, service.ErrMemberNotFound):
		apiErr = pulsosdk.NewAPIError(http.StatusNotFound, pulsosdk.ErrorCodeNotFound, "membership not found")
	case errors.Is(err, service.ErrInvitationExpired):
		apiErr = pulsosdk.NewAPIError(http.StatusGone, pulsosdk.ErrorCodeGone, "invitation has expired")
	case errors.Is(err, service.ErrInvitationMismatch):
		apiErr = pulsosdk.NewAPIError(http.StatusForbidden, pulsosdk.ErrorCodeAccessDenied, "invitation was issued for a different email")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "op", op, "error", err)
		apiErr = pulsosdk.ErrServerError
	}
	apiErr.WriteError(w)
}

func writeBadRequest(w http.ResponseWriter, description string) {
	pulsosdk.NewAPIError(http.StatusBadRequest, pulsosdk.ErrorCodeInvalidRequest, description).WriteError(w)
}
