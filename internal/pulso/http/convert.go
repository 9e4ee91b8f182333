package http

import (
	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/pkg/pulsosdk"
)

func toEmpresaResponse(e domain.Empresa) pulsosdk.EmpresaResponse {
	return pulsosdk.EmpresaResponse{
		ID:                             e.ID,
		Nombre:                         e.Nombre,
		TipoNegocio:                    e.TipoNegocio,
		Ciudad:                         e.Ciudad,
		Telefono:                       e.Telefono,
		PlanActivo:                     e.PlanActivo,
		PropietarioEmail:               e.PropietarioEmail,
		ConfiguracionInicialCompletada: e.ConfiguracionInicialCompletada,
		CreatedAt:                      e.CreatedAt,
	}
}

// toInvitationResponse omits the token unless withToken is set.
func toInvitationResponse(inv domain.Invitation, withToken bool) pulsosdk.InvitationResponse {
	resp := pulsosdk.InvitationResponse{
		ID:         inv.ID,
		Email:      inv.Email,
		EmpresaID:  inv.EmpresaID,
		RoleID:     inv.RoleID,
		SucursalID: inv.SucursalID,
		Status:     string(inv.Status),
		ExpiresAt:  inv.ExpiresAt,
		AcceptedAt: inv.AcceptedAt,
		CreatedAt:  inv.CreatedAt,
	}
	if withToken {
		resp.Token = inv.Token
		resp.AcceptURL = inv.AcceptPath()
	}
	return resp
}

func toPermissionResponses(perms []domain.Permission) []pulsosdk.PermissionResponse {
	out := make([]pulsosdk.PermissionResponse, len(perms))
	for i, p := range perms {
		out[i] = pulsosdk.PermissionResponse{
			Name:             p.Name,
			Category:         p.Category,
			Resource:         p.Resource,
			Action:           p.Action,
			CriticalityLevel: p.CriticalityLevel,
		}
	}
	return out
}

func toRoleResponses(roles []domain.Role) []pulsosdk.RoleResponse {
	out := make([]pulsosdk.RoleResponse, len(roles))
	for i, r := range roles {
		out[i] = pulsosdk.RoleResponse{
			ID:             r.ID,
			Name:           r.Name,
			DisplayName:    r.DisplayName,
			HierarchyLevel: r.HierarchyLevel,
		}
	}
	return out
}

func toSucursalResponse(s domain.Sucursal) pulsosdk.SucursalResponse {
	return pulsosdk.SucursalResponse{
		ID:                s.ID,
		EmpresaID:         s.EmpresaID,
		Nombre:            s.Nombre,
		Direccion:         s.Direccion,
		Ciudad:            s.Ciudad,
		Telefono:          s.Telefono,
		CapacidadPersonas: s.CapacidadPersonas,
		NumeroMesas:       s.NumeroMesas,
		HorarioApertura:   s.HorarioApertura,
		HorarioCierre:     s.HorarioCierre,
		EsPrincipal:       s.EsPrincipal,
		Activa:            s.Activa,
		CreatedAt:         s.CreatedAt,
	}
}

func toMemberResponse(ur domain.UserRole) pulsosdk.MemberResponse {
	return pulsosdk.MemberResponse{
		ID:             ur.ID,
		UserID:         ur.UserID,
		Email:          ur.UserEmail,
		Role:           ur.RoleName,
		HierarchyLevel: ur.HierarchyLevel,
		SucursalID:     ur.SucursalID,
		CreatedAt:      ur.CreatedAt,
	}
}

func toChecklistFormResponse(f domain.ChecklistForm) pulsosdk.ChecklistFormResponse {
	resp := pulsosdk.ChecklistFormResponse{
		Editable:       f.Editable,
		Categorias:     make([]string, len(f.Categories)),
		MaxNombre:      f.MaxNombre,
		MaxDescripcion: f.MaxDescripcion,
	}
	for i, c := range f.Categories {
		resp.Categorias[i] = string(c)
	}
	return resp
}
