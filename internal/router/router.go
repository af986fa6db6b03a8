// Package router builds the echo instance: global middleware in order,
// then the system and destination routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/travel-api/internal/handler"
	"github.com/deppfellow/travel-api/internal/middleware"
	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context logger
	// reads it, and the New Relic transaction before tracing decorates it.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.GET("/", h.Home.Welcome)

	registerDestinationRoutes(router, h)

	return router
}

func registerDestinationRoutes(r *echo.Echo, h *handler.Handlers) {
	d := h.Destination
	destinations := r.Group("/destinations")

	destinations.GET("", handler.Handle(d.Handler, d.ListDestinations, http.StatusOK, &model.ListDestinationsRequest{}))
	destinations.POST("", handler.Handle(d.Handler, d.CreateDestination, http.StatusCreated, &model.CreateDestinationRequest{}))
	destinations.GET("/:id", handler.Handle(d.Handler, d.GetDestination, http.StatusOK, &model.GetDestinationRequest{}))
	destinations.PUT("/:id", handler.Handle(d.Handler, d.UpdateDestination, http.StatusOK, &model.UpdateDestinationRequest{}))
	destinations.DELETE("/:id", handler.Handle(d.Handler, d.DeleteDestination, http.StatusOK, &model.DeleteDestinationRequest{}))
}
