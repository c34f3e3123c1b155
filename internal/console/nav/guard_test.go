package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/console/session"
	"marketadmin/internal/domain/entity"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func loggedInStore(t *testing.T, admin *entity.Admin) *session.Store {
	t.Helper()
	store := session.NewStore(newMemKV())
	require.NoError(t, store.Login("token-abc", admin))
	return store
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	guard := NewGuard(session.NewStore(newMemKV()))

	assert.Equal(t, RedirectLogin, guard.Check("/dashboard"))
	assert.Equal(t, RedirectLogin, guard.Check("/"))
}

func TestGrantedPathsAllowed(t *testing.T) {
	guard := NewGuard(loggedInStore(t, &entity.Admin{
		ID:          "staff-1",
		Role:        entity.RoleStaff,
		RouteGrants: []string{"/orders", "/orders/:id"},
	}))

	assert.Equal(t, Allow, guard.Check("/orders"))
	assert.Equal(t, Allow, guard.Check("/orders/123"))
	assert.Equal(t, Allow, guard.Check("/orders/123/"))
	assert.Equal(t, RedirectFallback, guard.Check("/orders/123/edit"))
	assert.Equal(t, RedirectFallback, guard.Check("/users"))
}

func TestSuperAdminBypassesGrants(t *testing.T) {
	guard := NewGuard(loggedInStore(t, &entity.Admin{
		ID:   "root-1",
		Role: entity.RoleSuperAdmin,
	}))

	assert.Equal(t, Allow, guard.Check("/anything/at/all"))
	assert.Equal(t, Allow, guard.Check("/"))
}

func TestMatcherFollowsGrantChanges(t *testing.T) {
	store := loggedInStore(t, &entity.Admin{
		ID:          "staff-1",
		Role:        entity.RoleStaff,
		RouteGrants: []string{"/orders"},
	})
	guard := NewGuard(store)

	assert.Equal(t, Allow, guard.Check("/orders"))
	assert.Equal(t, RedirectFallback, guard.Check("/users"))

	// Grants widened on re-login, e.g. after an admin updated them.
	require.NoError(t, store.Login("token-def", &entity.Admin{
		ID:          "staff-1",
		Role:        entity.RoleStaff,
		RouteGrants: []string{"/orders", "/users"},
	}))

	assert.Equal(t, Allow, guard.Check("/users"))
}
