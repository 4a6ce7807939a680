package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/internal/utils"
	"github.com/ridenaija/ridenaija/services/trips"
)

// TripHandler handles HTTP requests for the trip catalog
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// SearchTrips handles trip catalog searches
func (h *TripHandler) SearchTrips(c echo.Context) error {
	filter := &models.TripFilter{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
		Date: c.QueryParam("date"),
	}

	tripList, err := h.tripUC.SearchTrips(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to search trips",
			logger.Err(err),
			logger.String("from", filter.From),
			logger.String("to", filter.To),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to search trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved", map[string]interface{}{
		"trips": tripList,
		"count": len(tripList),
	})
}

// GetTrip handles single trip retrieval
func (h *TripHandler) GetTrip(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, trips.ErrTripNotFound) {
			return utils.NotFoundResponse(c, "Trip not found")
		}
		logger.Error("Failed to get trip",
			logger.Err(err),
			logger.String("trip_id", id.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to get trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved", trip)
}

// GetCities returns the static city catalog
func (h *TripHandler) GetCities(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Cities retrieved", map[string]interface{}{
		"cities": h.tripUC.Cities(),
	})
}

// GetRoutes returns the static corridor catalog
func (h *TripHandler) GetRoutes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved", map[string]interface{}{
		"routes": h.tripUC.Routes(),
	})
}
