package domain

// Criteria is the set of requirements a gate checks. Zero values mean the
// corresponding check does not apply.
type Criteria struct {
	Permission        string
	Resource          string
	Action            string
	MinHierarchyLevel int
	EmpresaID         string
}

// IsZero reports whether no check applies.
func (c Criteria) IsZero() bool {
	return c.Permission == "" && (c.Resource == "" || c.Action == "") && c.MinHierarchyLevel <= 0
}

// Decision reasons.
const (
	ReasonAllowed         = "allowed"
	ReasonUnauthenticated = "unauthenticated"
	ReasonPermission      = "missing_permission"
	ReasonResource        = "resource_denied"
	ReasonHierarchy       = "insufficient_hierarchy"
	ReasonError           = "error"
)

type Decision struct {
	Allowed bool
	Reason  string
}
