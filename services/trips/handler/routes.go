package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips/handler/http"
)

// Handler coordinates the HTTP handlers for the trips service
type Handler struct {
	tripHandler *http.TripHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	tripHandler *http.TripHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		tripHandler: tripHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the public trip catalog routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	tripGroup := e.Group("/api/trips")
	tripGroup.GET("", h.tripHandler.SearchTrips)
	tripGroup.GET("/:id", h.tripHandler.GetTrip)

	e.GET("/api/cities", h.tripHandler.GetCities)
	e.GET("/api/routes", h.tripHandler.GetRoutes)
}
