package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

// SettlePayment marks the passenger's booking paid and returns the receipt.
// Settlement is idempotent: paying an already paid booking returns the same
// receipt data again.
func (u *BookingUC) SettlePayment(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.PaymentReceipt, error) {
	booking, err := u.bookingRepo.UpdatePaymentStatus(ctx, bookingID, passengerID, models.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment settled",
		logger.String("booking_id", booking.ID.String()),
		logger.String("receipt_number", booking.ReceiptNumber))

	event := &models.BookingEvent{
		BookingID:        booking.ID,
		TripID:           booking.TripID,
		PassengerID:      booking.PassengerID,
		Seats:            booking.Seats,
		TotalPrice:       booking.TotalPrice,
		BookingReference: booking.BookingReference,
		OccurredAt:       time.Now(),
	}
	if err := u.bookingGW.PublishBookingPaid(ctx, event); err != nil {
		logger.Warn("Failed to publish booking.paid",
			logger.Err(err),
			logger.String("booking_id", booking.ID.String()))
	}

	return &models.PaymentReceipt{
		BookingReference: booking.BookingReference,
		ReceiptNumber:    booking.ReceiptNumber,
		TotalAmount:      booking.TotalPrice,
		PaymentDate:      time.Now(),
	}, nil
}

// ApplySettlement applies an asynchronous settlement result from the
// payment collaborator.
func (u *BookingUC) ApplySettlement(ctx context.Context, event *models.PaymentSettledEvent) error {
	var status models.PaymentStatus
	switch event.Status {
	case string(models.PaymentStatusPaid):
		status = models.PaymentStatusPaid
	case string(models.PaymentStatusFailed):
		status = models.PaymentStatusFailed
	default:
		return fmt.Errorf("unknown settlement status %q", event.Status)
	}

	booking, err := u.bookingRepo.UpdatePaymentStatus(ctx, event.BookingID, event.PassengerID, status)
	if err != nil {
		return fmt.Errorf("failed to apply settlement: %w", err)
	}

	logger.Info("Settlement applied",
		logger.String("booking_id", booking.ID.String()),
		logger.String("payment_status", string(status)))

	return nil
}
