package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type OnboardingHandler struct {
	OnboardingService *service.OnboardingService
	CompanyService    *service.CompanyService
}

// HandleStatus godoc
//
//	@Summary		Onboarding redirect
//	@Description	Decides where the caller belongs: /login without a session, /dashboard when they own a company,
//	@Description	their invitation when one is pending, otherwise the onboarding wizard.
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{object}	pulsosdk.OnboardingStatusResponse	"destination or show_wizard"
//	@Router			/v1/onboarding/status [get].
func (h *OnboardingHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	res := h.OnboardingService.Resolve(r.Context(), userFromRequest(r))
	httpx.WriteJSON(w, http.StatusOK, pulsosdk.OnboardingStatusResponse{
		Destination: res.Destination,
		ShowWizard:  res.ShowWizard,
	})
}

// HandleSubmit godoc
//
//	@Summary		Complete onboarding
//	@Description	Creates the caller's company and its main branch, makes them its owner and invites their team to
//	@Description	that branch.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pulsosdk.OnboardingRequest	true	"Wizard data"
//	@Success		201		{object}	pulsosdk.OnboardingResponse	"company and invitations"
//	@Failure		400		{object}	pulsosdk.ErrorResponse		"invalid wizard data"
//	@Failure		401		{object}	pulsosdk.ErrorResponse		"missing or invalid session"
//	@Failure		409		{object}	pulsosdk.ErrorResponse		"caller already owns a company"
//	@Security		BearerAuth
//	@Router			/v1/onboarding [post].
func (h *OnboardingHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req pulsosdk.OnboardingRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	in := service.OnboardingInput{
		Nombre:      req.Nombre,
		TipoNegocio: req.TipoNegocio,
		Ciudad:      req.Ciudad,
		Telefono:    req.Telefono,
		PlanActivo:  req.PlanActivo,
	}
	if b := req.Sucursal; b != nil {
		in.Sucursal = service.SucursalInput{
			Nombre:            b.Nombre,
			Direccion:         b.Direccion,
			Ciudad:            b.Ciudad,
			Telefono:          b.Telefono,
			CapacidadPersonas: b.CapacidadPersonas,
			NumeroMesas:       b.NumeroMesas,
			HorarioApertura:   b.HorarioApertura,
			HorarioCierre:     b.HorarioCierre,
		}
	}
	for _, inv := range req.Invitations {
		in.Invitations = append(in.Invitations, service.Invitee{Email: inv.Email, Role: inv.Role})
	}

	res, err := h.CompanyService.CompleteOnboarding(r.Context(), userFromRequest(r), in)
	if err != nil {
		writeServiceError(w, r, err, "complete onboarding")
		return
	}

	resp := pulsosdk.OnboardingResponse{
		Empresa:     toEmpresaResponse(res.Empresa),
		Sucursal:    toSucursalResponse(res.Sucursal),
		Invitations: make([]pulsosdk.InvitationResponse, len(res.Invitations)),
		Skipped:     res.Skipped,
	}
	for i, inv := range res.Invitations {
		resp.Invitations[i] = toInvitationResponse(inv, true)
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}
