package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	orderGroup := e.Group("/v1/orders")
	orderGroup.Use(authMiddleware.Authenticate)
	orderGroup.Use(permMiddleware.Guard)

	orderGroup.GET("", orderHandler.List)
	orderGroup.GET("/summary", orderHandler.StatusSummary)
	orderGroup.GET("/:id", orderHandler.GetByID)
}
