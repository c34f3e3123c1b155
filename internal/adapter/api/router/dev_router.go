package router

import (
	"github.com/labstack/echo/v4"

	"marketadmin/internal/adapter/api/handler"
)

// SetupDevRouter registers local-development helpers. Never mounted in
// production; see router.Setup.
func SetupDevRouter(e *echo.Echo, devTokenHandler *handler.DevTokenHandler) {
	e.POST("/v1/dev/token", devTokenHandler.Generate)
}
