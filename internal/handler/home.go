package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/travel-api/internal/model"
	"github.com/deppfellow/travel-api/internal/server"
)

const welcomeMessage = "Welcome to the travel API"

// HomeHandler serves the welcome route.
type HomeHandler struct {
	Handler
}

func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

func (h *HomeHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MessageResponse{Message: welcomeMessage})
}
