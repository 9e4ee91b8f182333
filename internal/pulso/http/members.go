package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type MembersHandler struct {
	MembersService *service.MembersService
}

// HandleList godoc
//
//	@Summary		List a company's members
//	@Description	Lists the active role assignments of a company, highest role first. Requires users.invite there.
//	@Tags			Members
//	@Produce		json
//	@Param			empresa_id	query		string							true	"Company"
//	@Success		200			{object}	pulsosdk.ListMembersResponse	"members"
//	@Failure		400			{object}	pulsosdk.ErrorResponse			"empresa_id missing"
//	@Failure		403			{object}	pulsosdk.ErrorResponse			"not allowed"
//	@Security		BearerAuth
//	@Router			/v1/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	empresaID, ok := empresaIDParam(r)
	if !ok || empresaID == "" {
		writeBadRequest(w, "a valid empresa_id is required")
		return
	}

	list, err := h.MembersService.List(r.Context(), userFromRequest(r), empresaID)
	if err != nil {
		writeServiceError(w, r, err, "list members")
		return
	}

	resp := pulsosdk.ListMembersResponse{Members: make([]pulsosdk.MemberResponse, len(list))}
	for i, ur := range list {
		resp.Members[i] = toMemberResponse(ur)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleRevoke godoc
//
//	@Summary		Revoke a membership
//	@Description	Deactivates a role assignment. Requires users.invite in its company and a higher role than the
//	@Description	member. The member's cached permissions are dropped at once.
//	@Tags			Members
//	@Param			id	path	string	true	"Assignment ID"
//	@Success		204	"revoked"
//	@Failure		403	{object}	pulsosdk.ErrorResponse	"not allowed"
//	@Failure		404	{object}	pulsosdk.ErrorResponse	"unknown or already revoked"
//	@Security		BearerAuth
//	@Router			/v1/members/{id} [delete].
func (h *MembersHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.MembersService.Revoke(r.Context(), userFromRequest(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "revoke member")
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
