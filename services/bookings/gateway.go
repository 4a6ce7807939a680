package bookings

import (
	"context"

	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ridenaija/ridenaija/services/bookings BookingGW

// BookingGW defines the messaging gateway for booking lifecycle events
type BookingGW interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error
	PublishBookingPaid(ctx context.Context, event *models.BookingEvent) error
	PublishBookingCancelled(ctx context.Context, event *models.BookingEvent) error
}
