package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	notificationGroup := e.Group("/v1/notifications")
	notificationGroup.Use(authMiddleware.Authenticate)
	notificationGroup.Use(permMiddleware.Guard)

	notificationGroup.GET("", notificationHandler.List)
	notificationGroup.PUT("/:id/read", notificationHandler.MarkRead)
}
