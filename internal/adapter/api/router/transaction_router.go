package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
	"marketadmin/internal/adapter/api/middleware"
)

func SetupTransactionRouter(e *echo.Echo, txnHandler *handler.TransactionHandler, authMiddleware *middleware.AuthMiddleware, permMiddleware *middleware.PermissionMiddleware) {
	txnGroup := e.Group("/v1/transactions")
	txnGroup.Use(authMiddleware.Authenticate)
	txnGroup.Use(permMiddleware.Guard)

	txnGroup.GET("", txnHandler.List)
	txnGroup.GET("/:id", txnHandler.GetByID)
	txnGroup.POST("/:id/release", txnHandler.Release)
	txnGroup.POST("/:id/refund", txnHandler.Refund)
}
