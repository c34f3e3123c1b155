package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)
	chatGroup.Use(permMiddleware.Guard)

	chatGroup.GET("", chatHandler.GetChats)
	chatGroup.GET("/:id/messages", chatHandler.GetMessages)
	chatGroup.POST("/:id/messages", chatHandler.SendMessage)
	chatGroup.PUT("/:id/read", chatHandler.MarkRead)
}
