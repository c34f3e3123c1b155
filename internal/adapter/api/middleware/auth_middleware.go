package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"marketadmin/internal/infrastructure/firebase"
)

// TokenVerifier resolves a bearer token to an account ID.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type AuthMiddleware struct {
	verifier  TokenVerifier
	devSecret string
	devMode   bool
}

func NewAuthMiddleware(verifier TokenVerifier, devSecret string, devMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:  verifier,
		devSecret: devSecret,
		devMode:   devMode,
	}
}

// Authenticate validates the Authorization header and stores the account ID
// under "uid". Missing or invalid tokens are 401, distinct from the 403 the
// permission guard issues for an authenticated but unauthorized principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		uid, err := m.resolve(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)
		return next(c)
	}
}

func (m *AuthMiddleware) resolve(ctx context.Context, token string) (string, error) {
	uid, err := m.verifier.VerifyToken(ctx, token)
	if err == nil {
		return uid, nil
	}

	// Local development runs without a Firebase project; fall back to
	// HMAC dev tokens.
	if m.devMode {
		return firebase.VerifyDevToken(token, m.devSecret)
	}

	return "", err
}

// ResolveToken verifies a token outside the middleware chain (websocket
// upgrades pass the token as a query parameter).
func (m *AuthMiddleware) ResolveToken(ctx context.Context, token string) (string, error) {
	return m.resolve(ctx, token)
}
