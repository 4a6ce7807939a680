package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/internal/utils"
)

// Reserve creates a booking for the passenger. Fresh references are drawn
// on every attempt so a reference collision never burns the whole budget.
func (u *BookingUC) Reserve(ctx context.Context, passengerID uuid.UUID, req *models.ReserveRequest) (*models.BookingConfirmation, error) {
	if req.TripID == uuid.Nil {
		return nil, fmt.Errorf("trip ID is required")
	}
	if req.Seats < 1 {
		return nil, fmt.Errorf("at least 1 seat required")
	}

	var booking *models.Booking

	err := u.retrier.Execute(ctx, func(ctx context.Context) error {
		bookingRef, err := u.refGen.BookingReference()
		if err != nil {
			return err
		}
		receiptNum, err := u.refGen.ReceiptNumber()
		if err != nil {
			return err
		}

		attempt := &models.Booking{
			TripID:           req.TripID,
			PassengerID:      passengerID,
			Seats:            req.Seats,
			Notes:            utils.SanitizeString(req.Notes),
			BookingReference: bookingRef,
			ReceiptNumber:    receiptNum,
		}

		if err := u.bookingRepo.CreateBooking(ctx, attempt); err != nil {
			return err
		}

		booking = attempt
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID.String()),
		logger.String("booking_reference", booking.BookingReference),
		logger.String("trip_id", booking.TripID.String()),
		logger.Int("seats", booking.Seats))

	event := &models.BookingEvent{
		BookingID:        booking.ID,
		TripID:           booking.TripID,
		PassengerID:      booking.PassengerID,
		Seats:            booking.Seats,
		TotalPrice:       booking.TotalPrice,
		BookingReference: booking.BookingReference,
		OccurredAt:       time.Now(),
	}
	if err := u.bookingGW.PublishBookingCreated(ctx, event); err != nil {
		// The reservation is already committed; the event is best effort
		logger.Warn("Failed to publish booking.created",
			logger.Err(err),
			logger.String("booking_id", booking.ID.String()))
	}

	return &models.BookingConfirmation{
		Booking:  booking,
		Redirect: fmt.Sprintf("/payment?booking_id=%s", booking.ID),
	}, nil
}

// GetBooking returns the passenger's booking with its trip projection
func (u *BookingUC) GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	return u.bookingRepo.GetBooking(ctx, bookingID, passengerID)
}

// ListUserBookings returns the passenger's ledger, newest first
func (u *BookingUC) ListUserBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	return u.bookingRepo.ListUserBookings(ctx, passengerID)
}

// CancelBooking cancels the passenger's booking and restores its seats
func (u *BookingUC) CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	booking, err := u.bookingRepo.CancelBooking(ctx, bookingID, passengerID)
	if err != nil {
		return nil, err
	}

	logger.Info("Booking cancelled",
		logger.String("booking_id", booking.ID.String()),
		logger.String("booking_reference", booking.BookingReference),
		logger.Int("seats_restored", booking.Seats))

	event := &models.BookingEvent{
		BookingID:        booking.ID,
		TripID:           booking.TripID,
		PassengerID:      booking.PassengerID,
		Seats:            booking.Seats,
		TotalPrice:       booking.TotalPrice,
		BookingReference: booking.BookingReference,
		OccurredAt:       time.Now(),
	}
	if err := u.bookingGW.PublishBookingCancelled(ctx, event); err != nil {
		logger.Warn("Failed to publish booking.cancelled",
			logger.Err(err),
			logger.String("booking_id", booking.ID.String()))
	}

	return booking, nil
}
