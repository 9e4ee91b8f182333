package cache

import (
	"strings"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
)

// DefaultPermissionTTL bounds how stale a cached role or permission set may be.
const DefaultPermissionTTL = 5 * time.Minute

// allScope keys lookups that span every company.
const allScope = "all"

// PermissionCache memoises per-user role and permission lookups, keyed by
// user and company scope.
type PermissionCache interface {
	GetRoles(userID, empresaID string) ([]domain.UserRole, bool)
	SetRoles(userID, empresaID string, roles []domain.UserRole)
	GetPermissions(userID, empresaID string) ([]domain.Permission, bool)
	SetPermissions(userID, empresaID string, perms []domain.Permission)

	// ClearUser drops every scope cached for userID.
	ClearUser(userID string)
	ClearAll()
	// Sweep drops expired entries and reports how many were removed.
	Sweep() int
}

type permissionCache struct {
	roles Cache[string, []domain.UserRole]
	perms Cache[string, []domain.Permission]
	ttl   time.Duration
}

// NewPermissionCache returns an in-memory PermissionCache. A non-positive ttl
// falls back to DefaultPermissionTTL.
func NewPermissionCache(ttl time.Duration) PermissionCache {
	if ttl <= 0 {
		ttl = DefaultPermissionTTL
	}
	return &permissionCache{
		roles: NewTTLCache[string, []domain.UserRole](),
		perms: NewTTLCache[string, []domain.Permission](),
		ttl:   ttl,
	}
}

func (c *permissionCache) GetRoles(userID, empresaID string) ([]domain.UserRole, bool) {
	return c.roles.Get(scopeKey(userID, empresaID))
}

func (c *permissionCache) SetRoles(userID, empresaID string, roles []domain.UserRole) {
	c.roles.Set(scopeKey(userID, empresaID), roles, c.ttl)
}

func (c *permissionCache) GetPermissions(userID, empresaID string) ([]domain.Permission, bool) {
	return c.perms.Get(scopeKey(userID, empresaID))
}

func (c *permissionCache) SetPermissions(userID, empresaID string, perms []domain.Permission) {
	c.perms.Set(scopeKey(userID, empresaID), perms, c.ttl)
}

func (c *permissionCache) ClearUser(userID string) {
	prefix := userID + "|"
	match := func(k string) bool { return strings.HasPrefix(k, prefix) }
	c.roles.DeleteFunc(match)
	c.perms.DeleteFunc(match)
}

func (c *permissionCache) ClearAll() {
	c.roles.Clear()
	c.perms.Clear()
}

func (c *permissionCache) Sweep() int {
	return c.roles.Sweep() + c.perms.Sweep()
}

func scopeKey(userID, empresaID string) string {
	if empresaID == "" {
		empresaID = allScope
	}
	return userID + "|" + empresaID
}
