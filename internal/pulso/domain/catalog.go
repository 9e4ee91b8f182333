package domain

// Catalog is the set of roles and permissions seeded into an empty store.
type Catalog struct {
	Permissions []Permission
	Roles       []RoleDefinition
}

type RoleDefinition struct {
	Name           string
	DisplayName    string
	HierarchyLevel int
	Permissions    []string // permission names
}
