package router

import (
	"net/http"

	"github.com/deppfellow/user-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the
// user resource: the API descriptor and the health check.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	addRoute(r, http.MethodGet, "/", h.Info.GetInfo)
	addRoute(r, http.MethodGet, "/health", h.Health.CheckHealth)
}
