package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"

	"marketadmin/internal/domain/entity"
	"marketadmin/internal/domain/repository"
	"marketadmin/internal/routeguard"
)

// PermissionMiddleware authorizes authenticated admins against their route
// grants. Grants use the dashboard's page vocabulary ("/orders/:id"), so
// the API version prefix is stripped before evaluation — one grant list
// covers both console navigation and the API behind it.
type PermissionMiddleware struct {
	adminRepo repository.AdminRepository

	mu    sync.RWMutex
	cache map[string]*cachedMatcher
}

type cachedMatcher struct {
	fingerprint string
	matcher     *routeguard.Matcher
}

func NewPermissionMiddleware(adminRepo repository.AdminRepository) *PermissionMiddleware {
	return &PermissionMiddleware{
		adminRepo: adminRepo,
		cache:     make(map[string]*cachedMatcher),
	}
}

// Guard requires an authenticated admin whose grants authorize the request
// path. It also stores the principal under "admin" for handlers that need
// the acting operator.
func (m *PermissionMiddleware) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		admin, err := m.adminRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Not an admin account")
		}

		if admin.Status != "active" {
			return echo.NewHTTPError(http.StatusForbidden, "Account is suspended")
		}

		c.Set("admin", admin)

		path := strings.TrimPrefix(c.Request().URL.Path, "/v1")
		if path == "" {
			path = "/"
		}

		if !routeguard.IsAuthorized(admin.Role, m.matcherFor(admin), path) {
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient permission for this route")
		}

		return next(c)
	}
}

// SuperAdminOnly restricts a route group to the unrestricted role.
func (m *PermissionMiddleware) SuperAdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		admin, err := m.adminRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusForbidden, "Not an admin account")
		}

		if !admin.Unrestricted() {
			return echo.NewHTTPError(http.StatusForbidden, "Super admin privileges required")
		}

		c.Set("admin", admin)
		return next(c)
	}
}

// matcherFor returns the compiled matcher for an admin's grants, reusing
// the cached compilation until the grant list changes.
func (m *PermissionMiddleware) matcherFor(admin *entity.Admin) *routeguard.Matcher {
	fingerprint := strings.Join(admin.RouteGrants, "\n")

	m.mu.RLock()
	cached, ok := m.cache[admin.ID]
	m.mu.RUnlock()
	if ok && cached.fingerprint == fingerprint {
		return cached.matcher
	}

	matcher := routeguard.Compile(admin.RouteGrants)

	m.mu.Lock()
	m.cache[admin.ID] = &cachedMatcher{fingerprint: fingerprint, matcher: matcher}
	m.mu.Unlock()

	return matcher
}
