package http

import (
	"net/http"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/service"
	"github.com/pulsohoreca/pulso/pkg/httpx"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
	"golang.org/x/sync/errgroup"
)

type PermissionsHandler struct {
	Gate        *service.Gate
	Permissions *service.PermissionManager
}

// HandleCheck godoc
//
//	@Summary		Evaluate a permission gate
//	@Description	Evaluates gate criteria for the caller. Every supplied check must pass; with no criteria any
//	@Description	signed-in caller is allowed. Anonymous callers and failed lookups are denied.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pulsosdk.CheckRequest	true	"Gate criteria"
//	@Success		200		{object}	pulsosdk.CheckResponse	"allowed, reason"
//	@Failure		400		{object}	pulsosdk.ErrorResponse	"malformed criteria"
//	@Security		BearerAuth
//	@Router			/v1/permissions/check [post].
func (h *PermissionsHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req pulsosdk.CheckRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.MinHierarchyLevel < 0 {
		writeBadRequest(w, "min_hierarchy_level must not be negative")
		return
	}

	d := h.Gate.Evaluate(r.Context(), userFromRequest(r), domain.Criteria{
		Permission:        req.Permission,
		Resource:          req.Resource,
		Action:            req.Action,
		MinHierarchyLevel: req.MinHierarchyLevel,
		EmpresaID:         req.EmpresaID,
	})
	httpx.WriteJSON(w, http.StatusOK, pulsosdk.CheckResponse{
		Allowed: d.Allowed,
		Reason:  d.Reason,
	})
}

// HandleMe godoc
//
//	@Summary		Caller's roles and permissions
//	@Description	Lists the caller's active role assignments and the permissions they grant.
//	@Tags			Permissions
//	@Produce		json
//	@Param			empresa_id	query		string							false	"Limit to one company"
//	@Success		200			{object}	pulsosdk.MyPermissionsResponse	"roles, permissions, max level"
//	@Failure		401			{object}	pulsosdk.ErrorResponse			"missing or invalid session"
//	@Failure		500			{object}	pulsosdk.ErrorResponse			"lookup failed"
//	@Security		BearerAuth
//	@Router			/v1/permissions/me [get].
func (h *PermissionsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromRequest(r)
	empresaID, ok := empresaIDParam(r)
	if !ok {
		writeBadRequest(w, "invalid empresa_id")
		return
	}

	var (
		roles []domain.UserRole
		perms []domain.Permission
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roles, err = h.Permissions.UserRoles(gctx, user.ID, empresaID)
		return err
	})
	g.Go(func() error {
		var err error
		perms, err = h.Permissions.UserPermissions(gctx, user.ID, empresaID)
		return err
	})
	if err := g.Wait(); err != nil {
		writeServiceError(w, r, err, "list permissions")
		return
	}

	resp := pulsosdk.MyPermissionsResponse{
		Roles:             make([]pulsosdk.RoleAssignmentResponse, len(roles)),
		Permissions:       toPermissionResponses(perms),
		MaxHierarchyLevel: domain.MaxHierarchyLevel(roles),
	}
	for i, ur := range roles {
		resp.Roles[i] = pulsosdk.RoleAssignmentResponse{
			ID:             ur.ID,
			Role:           ur.RoleName,
			HierarchyLevel: ur.HierarchyLevel,
			EmpresaID:      ur.EmpresaID,
			SucursalID:     ur.SucursalID,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
