package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	// Authentication happens inside the handler via the token query
	// parameter; see WebSocketHandler.HandleWebSocket.
	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
