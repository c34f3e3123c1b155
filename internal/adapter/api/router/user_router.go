package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	userGroup := e.Group("/v1/users")
	userGroup.Use(authMiddleware.Authenticate)
	userGroup.Use(permMiddleware.Guard)

	userGroup.GET("", userHandler.List)
	userGroup.GET("/:id", userHandler.GetByID)
	userGroup.PUT("/:id/suspend", userHandler.Suspend)
	userGroup.PUT("/:id/reactivate", userHandler.Reactivate)
}
