package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridenaija/ridenaija/services/bookings BookingUC

// BookingUC represents the booking usecase interface
type BookingUC interface {
	// Reserve creates a booking for the authenticated passenger, retrying
	// bounded on reservation conflicts.
	Reserve(ctx context.Context, passengerID uuid.UUID, req *models.ReserveRequest) (*models.BookingConfirmation, error)

	GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)
	ListUserBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)

	// CancelBooking cancels the passenger's booking and returns the
	// reserved seats to the trip's inventory.
	CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)

	// SettlePayment marks the booking paid on behalf of the passenger and
	// returns the receipt.
	SettlePayment(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.PaymentReceipt, error)

	// ApplySettlement applies an asynchronous settlement result coming
	// from the payment collaborator.
	ApplySettlement(ctx context.Context, event *models.PaymentSettledEvent) error
}
