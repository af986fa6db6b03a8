package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
	"github.com/deppfellow/travel-api/internal/service"
)

// DestinationHandler serves the /destinations routes.
type DestinationHandler struct {
	Handler
	destinationService *service.DestinationService
}

func NewDestinationHandler(s *server.Server, destinationService *service.DestinationService) *DestinationHandler {
	return &DestinationHandler{
		Handler:            NewHandler(s),
		destinationService: destinationService,
	}
}

func (h *DestinationHandler) ListDestinations(c echo.Context, _ *model.ListDestinationsRequest) ([]model.Destination, error) {
	return h.destinationService.List(c.Request().Context())
}

func (h *DestinationHandler) GetDestination(c echo.Context, req *model.GetDestinationRequest) (*model.Destination, error) {
	return h.destinationService.Get(c.Request().Context(), req.ID)
}

func (h *DestinationHandler) CreateDestination(c echo.Context, req *model.CreateDestinationRequest) (*model.Destination, error) {
	return h.destinationService.Create(c.Request().Context(), req)
}

func (h *DestinationHandler) UpdateDestination(c echo.Context, req *model.UpdateDestinationRequest) (*model.Destination, error) {
	return h.destinationService.Update(c.Request().Context(), req)
}

func (h *DestinationHandler) DeleteDestination(c echo.Context, req *model.DeleteDestinationRequest) (*model.MessageResponse, error) {
	return h.destinationService.Delete(c.Request().Context(), req.ID)
}
