package service

import "slices"

// RouteRule guards a page prefix. A user passes when their max hierarchy
// level is at least MinLevel and, if AnyOf is set, they hold one of its
// permissions.
type RouteRule struct {
	Prefix   string
	MinLevel int
	AnyOf    []string
}

// RoutePolicy maps dashboard prefixes to rules. The longest matching prefix
// applies; paths with no matching rule are allowed.
type RoutePolicy struct {
	rules []RouteRule
}

// NewRoutePolicy builds a policy from rules.
func NewRoutePolicy(rules ...RouteRule) RoutePolicy {
	return RoutePolicy{rules: slices.Clone(rules)}
}

// DefaultRoutePolicy is the dashboard rule table.
func DefaultRoutePolicy() RoutePolicy {
	return NewRoutePolicy(
		RouteRule{Prefix: "/dashboard", MinLevel: 1},
		RouteRule{Prefix: "/dashboard/checklists", AnyOf: []string{PermChecklistView}},
		RouteRule{Prefix: "/dashboard/checklists/nuevo", AnyOf: []string{PermChecklistCreate}},
		RouteRule{Prefix: "/dashboard/automation", AnyOf: []string{PermAutomationView}},
		RouteRule{Prefix: "/dashboard/automation/configurar", AnyOf: []string{PermAutomationEdit}},
		RouteRule{Prefix: "/dashboard/automation/auditoria", AnyOf: []string{PermAuditView}},
		RouteRule{Prefix: "/dashboard/inventory", AnyOf: []string{PermInventoryView}},
		RouteRule{Prefix: "/dashboard/tickets", AnyOf: []string{PermTicketsView}},
		RouteRule{Prefix: "/dashboard/horeca", AnyOf: []string{PermDashboardHoreca}},
		RouteRule{Prefix: "/dashboard/flows", MinLevel: 6},
		RouteRule{Prefix: "/dashboard/reportes", AnyOf: []string{PermReportsView}},
		RouteRule{Prefix: "/dashboard/usuarios", MinLevel: 7, AnyOf: []string{PermUsersView}},
		RouteRule{Prefix: "/dashboard/configuracion", MinLevel: 9, AnyOf: []string{PermCompanyView}},
	)
}

// Match returns the most specific rule for path.
func (p RoutePolicy) Match(path string) (RouteRule, bool) {
	var (
		best  RouteRule
		found bool
	)
	for _, r := range p.rules {
		if hasPathPrefix(path, r.Prefix) && (!found || len(r.Prefix) > len(best.Prefix)) {
			best, found = r, true
		}
	}
	return best, found
}

// Allows reports whether a user with the given level and permission names
// may open path.
func (p RoutePolicy) Allows(path string, level int, permissions []string) bool {
	rule, ok := p.Match(path)
	if !ok {
		return true
	}
	if rule.MinLevel > 0 && level < rule.MinLevel {
		return false
	}
	if len(rule.AnyOf) == 0 {
		return true
	}
	for _, name := range rule.AnyOf {
		if slices.Contains(permissions, name) {
			return true
		}
	}
	return false
}

// IsPublicPath reports whether path is served without a session.
func IsPublicPath(path string) bool {
	for _, prefix := range []string{PathHome, PathLogin, PathRegister, PathAcceptInvitation} {
		if hasPathPrefix(path, prefix) {
			return true
		}
	}
	return false
}
