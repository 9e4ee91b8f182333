package pulsosdk

import "time"

// ErrorResponse is the JSON error body, used when decoding failures.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports readiness of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Catalog  string `json:"catalog"`
}

// ============================================================================
// Session & onboarding
// ============================================================================

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// OnboardingStatusResponse is the redirector's decision. Destination is
// empty when ShowWizard is true.
type OnboardingStatusResponse struct {
	Destination string `json:"destination,omitempty"`
	ShowWizard  bool   `json:"show_wizard"`
}

type InviteeRequest struct {
	Email string `json:"email"`
	// Role defaults to branch_manager.
	Role string `json:"role,omitempty"`
}

// SucursalRequest describes the company's main branch. Every field is
// optional; the name defaults to "Sucursal Principal" and the city and
// phone to the company's.
type SucursalRequest struct {
	Nombre            string `json:"nombre,omitempty"`
	Direccion         string `json:"direccion,omitempty"`
	Ciudad            string `json:"ciudad,omitempty"`
	Telefono          string `json:"telefono,omitempty"`
	CapacidadPersonas int    `json:"capacidad_personas,omitempty"`
	NumeroMesas       int    `json:"numero_mesas,omitempty"`
	HorarioApertura   string `json:"horario_apertura,omitempty"`
	HorarioCierre     string `json:"horario_cierre,omitempty"`
}

// OnboardingRequest is the submitted onboarding wizard.
type OnboardingRequest struct {
	Nombre      string           `json:"nombre"`
	TipoNegocio string           `json:"tipo_negocio,omitempty"`
	Ciudad      string           `json:"ciudad,omitempty"`
	Telefono    string           `json:"telefono,omitempty"`
	PlanActivo  string           `json:"plan_activo,omitempty"`
	Sucursal    *SucursalRequest `json:"sucursal,omitempty"`
	Invitations []InviteeRequest `json:"invitations,omitempty"`
}

type EmpresaResponse struct {
	ID                             string    `json:"id"`
	Nombre                         string    `json:"nombre"`
	TipoNegocio                    string    `json:"tipo_negocio,omitempty"`
	Ciudad                         string    `json:"ciudad,omitempty"`
	Telefono                       string    `json:"telefono,omitempty"`
	PlanActivo                     string    `json:"plan_activo,omitempty"`
	PropietarioEmail               string    `json:"propietario_email"`
	ConfiguracionInicialCompletada bool      `json:"configuracion_inicial_completada"`
	CreatedAt                      time.Time `json:"created_at"`
}

type SucursalResponse struct {
	ID                string    `json:"id"`
	EmpresaID         string    `json:"empresa_id"`
	Nombre            string    `json:"nombre"`
	Direccion         string    `json:"direccion,omitempty"`
	Ciudad            string    `json:"ciudad,omitempty"`
	Telefono          string    `json:"telefono,omitempty"`
	CapacidadPersonas int       `json:"capacidad_personas"`
	NumeroMesas       int       `json:"numero_mesas"`
	HorarioApertura   string    `json:"horario_apertura,omitempty"`
	HorarioCierre     string    `json:"horario_cierre,omitempty"`
	EsPrincipal       bool      `json:"es_principal"`
	Activa            bool      `json:"activa"`
	CreatedAt         time.Time `json:"created_at"`
}

type OnboardingResponse struct {
	Empresa     EmpresaResponse      `json:"empresa"`
	Sucursal    SucursalResponse     `json:"sucursal"`
	Invitations []InvitationResponse `json:"invitations"`
	Skipped     []string             `json:"skipped,omitempty"`
}

// ============================================================================
// Permissions
// ============================================================================

// CheckRequest carries gate criteria. Unset fields are not checked.
type CheckRequest struct {
	Permission        string `json:"permission,omitempty"`
	Resource          string `json:"resource,omitempty"`
	Action            string `json:"action,omitempty"`
	MinHierarchyLevel int    `json:"min_hierarchy_level,omitempty"`
	EmpresaID         string `json:"empresa_id,omitempty"`
}

// CheckResponse is the gate's decision.
type CheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

type PermissionResponse struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Resource         string `json:"resource"`
	Action           string `json:"action"`
	CriticalityLevel int    `json:"criticality_level"`
}

type RoleAssignmentResponse struct {
	ID             string  `json:"id"`
	Role           string  `json:"role"`
	HierarchyLevel int     `json:"hierarchy_level"`
	EmpresaID      string  `json:"empresa_id"`
	SucursalID     *string `json:"sucursal_id,omitempty"`
}

// MyPermissionsResponse lists the caller's roles and permissions.
type MyPermissionsResponse struct {
	Roles             []RoleAssignmentResponse `json:"roles"`
	Permissions       []PermissionResponse     `json:"permissions"`
	MaxHierarchyLevel int                      `json:"max_hierarchy_level"`
}

type RoleResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	HierarchyLevel int    `json:"hierarchy_level"`
}

type ListRolesResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// MenuItemResponse is one visible dashboard navigation entry.
type MenuItemResponse struct {
	Title string `json:"title"`
	Href  string `json:"href"`
	Icon  string `json:"icon,omitempty"`
}

// NavigationResponse is the caller's dashboard menu. EmpresaID is empty
// when the caller belongs to no company.
type NavigationResponse struct {
	EmpresaID string             `json:"empresa_id,omitempty"`
	Items     []MenuItemResponse `json:"items"`
}

// ============================================================================
// Members
// ============================================================================

type MemberResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	HierarchyLevel int       `json:"hierarchy_level"`
	SucursalID     *string   `json:"sucursal_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ============================================================================
// Invitations
// ============================================================================

type InvitationRequest struct {
	Email      string  `json:"email"`
	EmpresaID  string  `json:"empresa_id"`
	Role       string  `json:"role"`
	SucursalID *string `json:"sucursal_id,omitempty"`
}

type InvitationResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	EmpresaID  string     `json:"empresa_id"`
	RoleID     string     `json:"role_id"`
	SucursalID *string    `json:"sucursal_id,omitempty"`
	Status     string     `json:"status"`
	Token      string     `json:"token,omitempty"`
	AcceptURL  string     `json:"accept_url,omitempty"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

type AcceptInvitationResponse struct {
	EmpresaID string `json:"empresa_id"`
	RoleID    string `json:"role_id"`
	Redirect  string `json:"redirect"`
}

// ============================================================================
// Checklists
// ============================================================================

type ChecklistDraftRequest struct {
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion,omitempty"`
}

type ChecklistDraftResponse struct {
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion,omitempty"`
}

// ChecklistFormResponse describes the new checklist form. Editable is false
// for callers without checklist.create, who get a read-only form.
type ChecklistFormResponse struct {
	Editable          bool     `json:"editable"`
	Categorias        []string `json:"categorias"`
	MaxNombre         int      `json:"max_nombre"`
	MaxDescripcion    int      `json:"max_descripcion"`
	DescripcionAcceso string   `json:"descripcion_acceso,omitempty"`
}
