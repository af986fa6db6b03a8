package handler

import (
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Home        *HomeHandler
	Destination *DestinationHandler
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Home:        NewHomeHandler(s),
		Destination: NewDestinationHandler(s, services.Destination),
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
	}
}
