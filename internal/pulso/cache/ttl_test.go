package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTTLCacheExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := newTTLCache[string, int](clock.Now)

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, 0) // ignored

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("b")
	require.False(t, ok)

	clock.Advance(time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok)

	require.Equal(t, 1, c.Len())
	require.Equal(t, 1, c.Sweep())
	require.Zero(t, c.Len())
}

func TestTTLCacheDeleteFunc(t *testing.T) {
	c := NewTTLCache[string, int]()
	c.Set("u1|all", 1, time.Minute)
	c.Set("u1|e1", 2, time.Minute)
	c.Set("u10|all", 3, time.Minute)

	n := c.DeleteFunc(func(k string) bool { return k[:3] == "u1|" })
	require.Equal(t, 2, n)

	_, ok := c.Get("u10|all")
	require.True(t, ok)

	c.Clear()
	require.Zero(t, c.Len())
}

func TestPermissionCacheScopes(t *testing.T) {
	c := NewPermissionCache(time.Minute)

	c.SetRoles("u1", "", []domain.UserRole{{RoleName: "owner"}})
	c.SetRoles("u1", "e1", []domain.UserRole{{RoleName: "supervisor"}})
	c.SetPermissions("u10", "", []domain.Permission{{Name: "checklist.view"}})

	roles, ok := c.GetRoles("u1", "")
	require.True(t, ok)
	require.Equal(t, "owner", roles[0].RoleName)

	roles, ok = c.GetRoles("u1", "e1")
	require.True(t, ok)
	require.Equal(t, "supervisor", roles[0].RoleName)

	c.ClearUser("u1")
	_, ok = c.GetRoles("u1", "")
	require.False(t, ok)
	_, ok = c.GetRoles("u1", "e1")
	require.False(t, ok)

	// A user whose id shares a prefix is untouched.
	_, ok = c.GetPermissions("u10", "")
	require.True(t, ok)

	c.ClearAll()
	_, ok = c.GetPermissions("u10", "")
	require.False(t, ok)
}
