package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type NavigationHandler struct {
	NavigationService *service.NavigationService
}

// ServeHTTP godoc
//
//	@Summary		Dashboard menu
//	@Description	Lists the dashboard entries the caller may open in a company, filtered by their hierarchy level and
//	@Description	permissions there. Without empresa_id the caller's own company is used, then the company they work in.
//	@Tags			Navigation
//	@Produce		json
//	@Param			empresa_id	query		string						false	"Company"
//	@Success		200			{object}	pulsosdk.NavigationResponse	"visible entries"
//	@Failure		400			{object}	pulsosdk.ErrorResponse		"invalid empresa_id"
//	@Failure		401			{object}	pulsosdk.ErrorResponse		"missing or invalid session"
//	@Security		BearerAuth
//	@Router			/v1/navigation [get].
func (h *NavigationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	empresaID, ok := empresaIDParam(r)
	if !ok {
		writeBadRequest(w, "invalid empresa_id")
		return
	}

	menu, err := h.NavigationService.Menu(r.Context(), userFromRequest(r), empresaID)
	if err != nil {
		writeServiceError(w, r, err, "navigation menu")
		return
	}

	resp := pulsosdk.NavigationResponse{
		EmpresaID: menu.EmpresaID,
		Items:     make([]pulsosdk.MenuItemResponse, len(menu.Items)),
	}
	for i, item := range menu.Items {
		resp.Items[i] = pulsosdk.MenuItemResponse{Title: item.Title, Href: item.Href, Icon: item.Icon}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
