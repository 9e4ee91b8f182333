package http

import (
	"net/http"
	"strings"

	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Invite a team member
//	@Description	Invites an email into a company with a role below the caller's own. Requires users.invite in that company.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pulsosdk.InvitationRequest	true	"Invitation request"
//	@Success		201		{object}	pulsosdk.InvitationResponse	"invitation including its token"
//	@Failure		400		{object}	pulsosdk.ErrorResponse		"invalid email, company or role"
//	@Failure		401		{object}	pulsosdk.ErrorResponse		"missing or invalid session"
//	@Failure		403		{object}	pulsosdk.ErrorResponse		"not allowed to invite with this role"
//	@Failure		409		{object}	pulsosdk.ErrorResponse		"email already has a pending invitation"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pulsosdk.InvitationRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.EmpresaID == "" || req.Role == "" {
		writeBadRequest(w, "email, empresa_id and role are required")
		return
	}

	inv, err := h.InvitationService.Create(r.Context(), userFromRequest(r), service.CreateInvitationInput{
		Email:      req.Email,
		EmpresaID:  req.EmpresaID,
		RoleName:   req.Role,
		SucursalID: req.SucursalID,
	})
	if err != nil {
		writeServiceError(w, r, err, "create invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv, true))
}

// HandleList godoc
//
//	@Summary		List a company's invitations
//	@Description	Lists every invitation of a company, newest first. Requires users.invite in that company.
//	@Tags			Invitations
//	@Produce		json
//	@Param			empresa_id	query		string								true	"Company"
//	@Success		200			{object}	pulsosdk.ListInvitationsResponse	"invitations"
//	@Failure		400			{object}	pulsosdk.ErrorResponse				"empresa_id missing"
//	@Failure		403			{object}	pulsosdk.ErrorResponse				"not allowed"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	empresaID, ok := empresaIDParam(r)
	if !ok || empresaID == "" {
		writeBadRequest(w, "a valid empresa_id is required")
		return
	}

	list, err := h.InvitationService.ListByEmpresa(r.Context(), userFromRequest(r), empresaID)
	if err != nil {
		writeServiceError(w, r, err, "list invitations")
		return
	}

	resp := pulsosdk.ListInvitationsResponse{Invitations: make([]pulsosdk.InvitationResponse, len(list))}
	for i, inv := range list {
		resp.Invitations[i] = toInvitationResponse(inv, true)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Look up an invitation
//	@Description	Returns the invitation behind a link. The token is not echoed back.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string						true	"Invitation token"
//	@Success		200		{object}	pulsosdk.InvitationResponse	"invitation"
//	@Failure		404		{object}	pulsosdk.ErrorResponse		"unknown token"
//	@Router			/v1/invitations/{token} [get].
func (h *InvitationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvitationService.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err, "get invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvitationResponse(inv, false))
}

// HandleAccept godoc
//
//	@Summary		Accept an invitation
//	@Description	Joins the caller to the invitation's company with the invited role. The invitation must be pending,
//	@Description	unexpired and addressed to the caller's email.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string								true	"Invitation token"
//	@Success		200		{object}	pulsosdk.AcceptInvitationResponse	"company, role and where to go next"
//	@Failure		401		{object}	pulsosdk.ErrorResponse				"missing or invalid session"
//	@Failure		403		{object}	pulsosdk.ErrorResponse				"issued for a different email"
//	@Failure		404		{object}	pulsosdk.ErrorResponse				"unknown token"
//	@Failure		409		{object}	pulsosdk.ErrorResponse				"no longer pending"
//	@Failure		410		{object}	pulsosdk.ErrorResponse				"expired"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{token}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ur, err := h.InvitationService.Accept(r.Context(), userFromRequest(r), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err, "accept invitation")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pulsosdk.AcceptInvitationResponse{
		EmpresaID: ur.EmpresaID,
		RoleID:    ur.RoleID,
		Redirect:  service.PathDashboard,
	})
}

// HandleRevoke godoc
//
//	@Summary		Revoke an invitation
//	@Description	Withdraws a pending invitation. Requires users.invite in the invitation's company.
//	@Tags			Invitations
//	@Param			token	path	string	true	"Invitation token"
//	@Success		204		"revoked"
//	@Failure		403		{object}	pulsosdk.ErrorResponse	"not allowed"
//	@Failure		404		{object}	pulsosdk.ErrorResponse	"unknown token"
//	@Failure		409		{object}	pulsosdk.ErrorResponse	"no longer pending"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{token} [delete].
func (h *InvitationsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	if err := h.InvitationService.Revoke(r.Context(), userFromRequest(r), r.PathValue("token")); err != nil {
		writeServiceError(w, r, err, "revoke invitation")
		return
	}
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
