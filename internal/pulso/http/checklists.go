package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type ChecklistsHandler struct {
	ChecklistService *service.ChecklistService
}

// ServeHTTP godoc
//
//	@Summary		Submit a checklist draft
//	@Description	Validates a checklist draft and returns it normalised. Drafts are not stored. Requires checklist.create.
//	@Tags			Checklists
//	@Accept			json
//	@Produce		json
//	@Param			empresa_id	query		string							false	"Company the permission is checked in"
//	@Param			request		body		pulsosdk.ChecklistDraftRequest	true	"Draft"
//	@Success		202			{object}	pulsosdk.ChecklistDraftResponse	"normalised draft"
//	@Failure		400			{object}	pulsosdk.ErrorResponse			"invalid draft"
//	@Failure		401			{object}	pulsosdk.ErrorResponse			"missing or invalid session"
//	@Failure		403			{object}	pulsosdk.ErrorResponse			"access_denied"
//	@Security		BearerAuth
//	@Router			/v1/checklists/drafts [post].
func (h *ChecklistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req pulsosdk.ChecklistDraftRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	draft, err := h.ChecklistService.Submit(r.Context(), domain.ChecklistDraft{
		Nombre:      req.Nombre,
		Categoria:   domain.ChecklistCategory(req.Categoria),
		Descripcion: req.Descripcion,
	})
	if err != nil {
		writeServiceError(w, r, err, "submit checklist")
		return
	}

	httpx.WriteJSON(w, http.StatusAccepted, pulsosdk.ChecklistDraftResponse{
		Nombre:      draft.Nombre,
		Categoria:   string(draft.Categoria),
		Descripcion: draft.Descripcion,
	})
}

// HandleForm godoc
//
//	@Summary		New checklist form
//	@Description	Describes the new checklist form. Callers with checklist.create get an editable form, everyone else
//	@Description	signed in gets the same form read-only instead of a 403.
//	@Tags			Checklists
//	@Produce		json
//	@Param			empresa_id	query		string							false	"Company the permission is checked in"
//	@Success		200			{object}	pulsosdk.ChecklistFormResponse	"form, editable or read-only"
//	@Failure		401			{object}	pulsosdk.ErrorResponse			"missing or invalid session"
//	@Security		BearerAuth
//	@Router			/v1/checklists/form [get].
func (h *ChecklistsHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, toChecklistFormResponse(h.ChecklistService.Form(true)))
}

// HandleReadOnlyForm serves the form to callers the gate turned away.
func (h *ChecklistsHandler) HandleReadOnlyForm(w http.ResponseWriter, r *http.Request) {
	resp := toChecklistFormResponse(h.ChecklistService.Form(false))
	resp.DescripcionAcceso = "Necesitas el permiso checklist.create para crear checklists."
	httpx.WriteJSON(w, http.StatusOK, resp)
}
