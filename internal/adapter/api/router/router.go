package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

// Handlers bundles everything the router registers.
type Handlers struct {
	Auth         *handler.AuthHandler
	Staff        *handler.StaffHandler
	User         *handler.UserHandler
	Order        *handler.OrderHandler
	Transaction  *handler.TransactionHandler
	Verification *handler.VerificationHandler
	Chat         *handler.ChatHandler
	Notification *handler.NotificationHandler
	Dashboard    *handler.DashboardHandler
	WebSocket    *handler.WebSocketHandler
	DevToken     *handler.DevTokenHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware, devMode bool) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, h.Auth, authMiddleware)
	SetupStaffRouter(e, h.Staff, authMiddleware, permMiddleware)
	SetupUserRouter(e, h.User, authMiddleware, permMiddleware)
	SetupOrderRouter(e, h.Order, authMiddleware, permMiddleware)
	SetupTransactionRouter(e, h.Transaction, authMiddleware, permMiddleware)
	SetupVerificationRouter(e, h.Verification, authMiddleware, permMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware, permMiddleware)
	SetupNotificationRouter(e, h.Notification, authMiddleware, permMiddleware)
	SetupDashboardRouter(e, h.Dashboard, authMiddleware, permMiddleware)
	SetupWebSocketRouter(e, h.WebSocket)

	if devMode && h.DevToken != nil {
		SetupDevRouter(e, h.DevToken)
	}
}
