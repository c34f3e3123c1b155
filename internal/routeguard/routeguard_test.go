package routeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootPatternMatchesOnlyRoot(t *testing.T) {
	m := Compile([]string{"/"})

	assert.True(t, IsAuthorized("staff", m, "/"))
	assert.False(t, IsAuthorized("staff", m, "/anything"))
	assert.False(t, IsAuthorized("staff", m, "/orders/123"))
}

func TestWildcardSegmentMatching(t *testing.T) {
	m := Compile([]string{"/orders/:id"})

	assert.True(t, m.Matches("/orders/123"))
	assert.True(t, m.Matches("/orders/abc"))
	assert.False(t, m.Matches("/orders"))
	assert.False(t, m.Matches("/orders/123/edit"))
}

func TestLiteralSegments(t *testing.T) {
	m := Compile([]string{"/vendors/:id/documents"})

	assert.True(t, m.Matches("/vendors/v1/documents"))
	assert.False(t, m.Matches("/vendors/v1/orders"))
	assert.False(t, m.Matches("/vendors/v1"))
	assert.False(t, m.Matches("/vendors/v1/documents/d1"))
}

func TestUnrestrictedRoleAlwaysAuthorized(t *testing.T) {
	m := Compile(nil)

	assert.True(t, IsAuthorized("super_admin", m, "/orders"))
	assert.True(t, IsAuthorized("super_admin", m, "/never/granted/anywhere"))
	assert.True(t, IsAuthorized("super_admin", nil, "/"))
}

func TestTrailingSlashNormalization(t *testing.T) {
	m := Compile([]string{"/orders", "/vendors/:id"})

	paths := []string{"/orders", "/orders/", "/vendors/9", "/vendors/9/"}
	for _, p := range paths {
		stripped := Normalize(p)
		assert.Equal(t, m.Matches(p), m.Matches(stripped), "path %q", p)
		assert.True(t, IsAuthorized("staff", m, p), "path %q", p)
	}

	// Root never normalizes to empty.
	assert.Equal(t, "/", Normalize("/"))
}

func TestEmptyGrantsDenyEverything(t *testing.T) {
	m := Compile(nil)

	assert.False(t, IsAuthorized("staff", m, "/"))
	assert.False(t, IsAuthorized("staff", m, "/orders"))
	assert.False(t, IsAuthorized("admin", nil, "/orders"))
}

func TestMalformedInputNeverPanics(t *testing.T) {
	m := Compile([]string{"", "/orders/:id", "no-leading-slash"})

	assert.NotPanics(t, func() {
		m.Matches("")
		m.Matches("///")
		m.Matches("/orders/")
		IsAuthorized("", nil, "")
	})
	assert.False(t, m.Matches(""))
}

func TestDeterministic(t *testing.T) {
	m := Compile([]string{"/orders/:id"})

	for i := 0; i < 3; i++ {
		assert.True(t, IsAuthorized("staff", m, "/orders/42"))
		assert.False(t, IsAuthorized("staff", m, "/orders/42/items"))
	}
}
