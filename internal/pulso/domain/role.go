package domain

import "time"

// Well-known role names.
const (
	RoleOwner          = "owner"
	RoleGeneralManager = "general_manager"
	RoleBranchManager  = "branch_manager"
	RoleSupervisor     = "supervisor"
	RoleEmployee       = "employee"
)

type Role struct {
	ID             string
	Name           string
	DisplayName    string
	HierarchyLevel int
	CreatedAt      time.Time
}

type Permission struct {
	ID               string
	Name             string
	Category         string
	Resource         string
	Action           string
	CriticalityLevel int
}

// UserRole is an active role assignment, scoped to a company and optionally a
// branch, with the permissions the role grants.
type UserRole struct {
	ID             string
	UserID         string
	UserEmail      string // only set on company member listings
	RoleID         string
	RoleName       string
	HierarchyLevel int
	EmpresaID      string
	SucursalID     *string
	Active         bool
	AssignedBy     string
	Permissions    []Permission
	CreatedAt      time.Time
}

// MaxHierarchyLevel returns the highest level across roles, or 0.
func MaxHierarchyLevel(roles []UserRole) int {
	level := 0
	for _, r := range roles {
		level = max(level, r.HierarchyLevel)
	}
	return level
}
