package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketadmin/internal/domain/entity"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

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

func TestStoreStartsUnauthenticated(t *testing.T) {
	store := NewStore(newMemKV())

	assert.False(t, store.Authenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.Principal())
}

func TestLoginPersistsAndLogoutClears(t *testing.T) {
	kv := newMemKV()
	store := NewStore(kv)

	admin := &entity.Admin{ID: "admin-1", Email: "ops@example.com", Role: entity.RoleStaff}
	require.NoError(t, store.Login("token-abc", admin))

	assert.True(t, store.Authenticated())
	assert.Equal(t, "token-abc", store.Token())

	// A fresh store over the same KV restores the session.
	restored := NewStore(kv)
	assert.True(t, restored.Authenticated())
	assert.Equal(t, "admin-1", restored.Principal().ID)
	assert.Equal(t, entity.RoleStaff, restored.Principal().Role)

	require.NoError(t, store.Logout())
	assert.False(t, store.Authenticated())
	assert.False(t, NewStore(kv).Authenticated())
}

func TestMissingOrCorruptKeysMeanUnauthenticated(t *testing.T) {
	kv := newMemKV()
	kv.data[keyToken] = "token-only"
	assert.False(t, NewStore(kv).Authenticated(), "token without principal")

	kv = newMemKV()
	kv.data[keyToken] = "token-abc"
	kv.data[keyPrincipal] = "{not json"
	assert.False(t, NewStore(kv).Authenticated(), "unparseable principal")

	kv = newMemKV()
	kv.data[keyPrincipal] = `{"id":"admin-1"}`
	assert.False(t, NewStore(kv).Authenticated(), "principal without token")
}

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	kv := NewFileKV(path)

	_, ok := kv.Get("missing")
	assert.False(t, ok)

	require.NoError(t, kv.Set("alpha", "1"))
	require.NoError(t, kv.Set("beta", "2"))

	v, ok := kv.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, kv.Delete("alpha"))
	_, ok = kv.Get("alpha")
	assert.False(t, ok)

	v, ok = kv.Get("beta")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}
