package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/internal/utils"
	"github.com/ridenaija/ridenaija/services/bookings"
)

// BookingHandler handles HTTP requests for bookings and payments
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// paymentRequest is the payload for the payment settlement endpoint
type paymentRequest struct {
	BookingID uuid.UUID `json:"booking_id"`
}

// passengerID extracts the authenticated passenger identity set by the JWT
// middleware.
func passengerID(c echo.Context) (uuid.UUID, bool) {
	v := c.Get("user_id")
	if v == nil {
		return uuid.Nil, false
	}
	switch id := v.(type) {
	case uuid.UUID:
		return id, id != uuid.Nil
	default:
		parsed, err := uuid.Parse(fmt.Sprintf("%v", v))
		if err != nil {
			return uuid.Nil, false
		}
		return parsed, true
	}
}

// CreateBooking handles seat reservation requests
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := passengerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.ReserveRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for booking",
			logger.Err(err),
			logger.String("endpoint", "CreateBooking"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	confirmation, err := h.bookingUC.Reserve(c.Request().Context(), userID, &req)
	if err != nil {
		return h.mapReserveError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", confirmation)
}

// mapReserveError translates reservation failures into HTTP responses
func (h *BookingHandler) mapReserveError(c echo.Context, err error) error {
	var insufficient *bookings.InsufficientSeatsError
	switch {
	case errors.Is(err, bookings.ErrTripNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, bookings.ErrTripNotBookable):
		return utils.BadRequestResponse(c, "Trip is not available for booking")
	case errors.As(err, &insufficient):
		return utils.BadRequestResponse(c, insufficient.Error())
	case errors.Is(err, bookings.ErrConcurrencyConflict):
		return utils.ConflictResponse(c, "Could not reserve seats, please try again")
	default:
		logger.Error("Reservation failed",
			logger.Err(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create booking")
	}
}

// ListUserBookings returns the authenticated passenger's bookings
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	userID, ok := passengerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingList, err := h.bookingUC.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list bookings",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", map[string]interface{}{
		"bookings": bookingList,
		"count":    len(bookingList),
	})
}

// GetBooking returns a single booking owned by the passenger
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, ok := passengerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		logger.Error("Failed to get booking",
			logger.Err(err),
			logger.String("booking_id", bookingID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to get booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", booking)
}

// CancelBooking cancels the passenger's booking and returns its seats to
// the trip's inventory.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := passengerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			return utils.NotFoundResponse(c, "Booking not found")
		case errors.Is(err, bookings.ErrBookingNotCancellable):
			return utils.BadRequestResponse(c, "Booking is already cancelled")
		case errors.Is(err, bookings.ErrConcurrencyConflict):
			return utils.ConflictResponse(c, "Could not cancel booking, please try again")
		default:
			logger.Error("Failed to cancel booking",
				logger.Err(err),
				logger.String("booking_id", bookingID.String()),
			)
			return utils.InternalServerErrorResponse(c, "Failed to cancel booking")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled successfully", booking)
}

// ProcessPayment settles payment for the passenger's booking
func (h *BookingHandler) ProcessPayment(c echo.Context) error {
	userID, ok := passengerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.BookingID == uuid.Nil {
		return utils.BadRequestResponse(c, "Booking ID is required")
	}

	receipt, err := h.bookingUC.SettlePayment(c.Request().Context(), req.BookingID, userID)
	if err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			return utils.NotFoundResponse(c, "Booking not found")
		}
		logger.Error("Failed to process payment",
			logger.Err(err),
			logger.String("booking_id", req.BookingID.String()),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment processed successfully", map[string]interface{}{
		"receipt":  receipt,
		"redirect": "/bookings",
	})
}
