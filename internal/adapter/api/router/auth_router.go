package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, authMiddleware *middleware.AuthMiddleware) {
	// Login is the only public endpoint besides health; everything else
	// requires a bearer token.
	e.POST("/v1/auth/login", authHandler.Login)

	authGroup := e.Group("/v1/auth")
	authGroup.Use(authMiddleware.Authenticate)
	authGroup.GET("/me", authHandler.Me)
	authGroup.PUT("/password", authHandler.UpdatePassword)
}
