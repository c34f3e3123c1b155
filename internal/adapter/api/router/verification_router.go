package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupVerificationRouter(e *echo.Echo, verificationHandler *handler.VerificationHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	verificationGroup := e.Group("/v1/verifications")
	verificationGroup.Use(authMiddleware.Authenticate)
	verificationGroup.Use(permMiddleware.Guard)

	verificationGroup.GET("", verificationHandler.ListQueue)
	verificationGroup.GET("/:id", verificationHandler.GetByID)
	verificationGroup.POST("/:id/approve", verificationHandler.Approve)
	verificationGroup.POST("/:id/reject", verificationHandler.Reject)
}
