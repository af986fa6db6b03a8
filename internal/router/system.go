package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/travel-api/internal/handler"
)

// registerSystemRoutes registers the endpoints outside the destination
// domain: health and API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/docs/openapi.json", h.OpenAPI.ServeOpenAPIDocument)
}
