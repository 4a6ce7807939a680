package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridenaija/ridenaija/services/bookings BookingRepo

// BookingRepo defines the booking ledger repository interface
type BookingRepo interface {
	// CreateBooking atomically reserves seats: it locks the trip row,
	// re-validates bookability, inserts the booking and decrements the
	// seat count in one transaction. The booking's TotalPrice and trip
	// projection are filled from the locked trip row.
	CreateBooking(ctx context.Context, booking *models.Booking) error

	// GetBooking returns the booking only if it belongs to the passenger.
	GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)

	// ListUserBookings returns the passenger's bookings, newest first.
	ListUserBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)

	// UpdatePaymentStatus transitions the booking's payment status and
	// returns the updated row. Ownership is enforced in the query.
	UpdatePaymentStatus(ctx context.Context, bookingID, passengerID uuid.UUID, status models.PaymentStatus) (*models.Booking, error)

	// CancelBooking cancels the booking and restores its seats to the trip
	// in one transaction. Ownership is enforced in the query.
	CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error)
}
