package usecase

import (
	"errors"

	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/internal/pkg/reference"
	"github.com/ridenaija/ridenaija/internal/pkg/retry"
	"github.com/ridenaija/ridenaija/services/bookings"
)

type BookingUC struct {
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	refGen      *reference.Generator
	retrier     *retry.Retrier
	cfg         *models.Config
}

// NewBookingUC creates a new booking usecase instance. Reservation attempts
// retry only on conflicts, within the configured budget.
func NewBookingUC(
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	cfg *models.Config,
	zapLogger *logger.ZapLogger,
) *BookingUC {
	retryConfig := retry.DefaultConfig()
	if cfg.Booking.MaxReserveAttempts > 0 {
		retryConfig.MaxRetries = cfg.Booking.MaxReserveAttempts
	}
	retryConfig.RetryableFunc = func(err error) bool {
		return errors.Is(err, bookings.ErrConcurrencyConflict)
	}

	return &BookingUC{
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		refGen:      reference.NewGenerator(),
		retrier:     retry.New(retryConfig, zapLogger),
		cfg:         cfg,
	}
}
