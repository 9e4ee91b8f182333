package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

type RolesHandler struct {
	RolesService *service.RolesService
	Permissions  *service.PermissionManager
}

// ServeHTTP handles the list roles endpoint
//
//	@Summary		List roles
//	@Description	Returns the role hierarchy, highest level first. With empresa_id only the roles the caller may
//	@Description	assign in that company are returned.
//	@Tags			Roles
//	@Produce		json
//	@Param			empresa_id	query		string						false	"Only roles assignable in this company"
//	@Success		200			{object}	pulsosdk.ListRolesResponse	"List of roles"
//	@Failure		401			{object}	pulsosdk.ErrorResponse		"missing or invalid session"
//	@Failure		500			{object}	pulsosdk.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/v1/roles [get].
func (h *RolesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		roles []domain.Role
		err   error
	)
	empresaID, ok := empresaIDParam(r)
	if !ok {
		writeBadRequest(w, "invalid empresa_id")
		return
	}
	if empresaID != "" {
		roles, err = h.RolesService.ListAssignable(ctx, h.Permissions, userFromRequest(r), empresaID)
	} else {
		roles, err = h.RolesService.ListAll(ctx)
	}
	if err != nil {
		writeServiceError(w, r, err, "list roles")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pulsosdk.ListRolesResponse{Roles: toRoleResponses(roles)})
}
