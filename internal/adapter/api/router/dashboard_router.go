package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, dashboardHandler *handler.DashboardHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	dashboardGroup := e.Group("/v1/dashboard")
	dashboardGroup.Use(authMiddleware.Authenticate)
	dashboardGroup.Use(permMiddleware.Guard)

	dashboardGroup.GET("/summary", dashboardHandler.Summary)
}
