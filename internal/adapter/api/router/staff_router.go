package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

// Staff management is reserved for the unrestricted role: grants cannot
// delegate the power to edit grants.
func SetupStaffRouter(e *echo.Echo, staffHandler *handler.StaffHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	staffGroup := e.Group("/v1/staff")
	staffGroup.Use(authMiddleware.Authenticate)
	staffGroup.Use(permMiddleware.SuperAdminOnly)

	staffGroup.POST("", staffHandler.Create)
	staffGroup.GET("", staffHandler.List)
	staffGroup.GET("/:id", staffHandler.GetByID)
	staffGroup.PUT("/:id/grants", staffHandler.UpdateGrants)
	staffGroup.PUT("/:id/status", staffHandler.SetStatus)
	staffGroup.DELETE("/:id", staffHandler.Delete)
}
