package gateway

import (
	"context"

	"github.com/ridenaija/ridenaija/internal/pkg/constants"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	natspkg "github.com/ridenaija/ridenaija/internal/pkg/nats"
)

// BookingGW publishes booking lifecycle events to NATS
type BookingGW struct {
	producer *natspkg.Producer
}

// NewBookingGW creates a new booking gateway instance
func NewBookingGW(client *natspkg.Client) *BookingGW {
	return &BookingGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishBookingCreated announces a committed reservation
func (g *BookingGW) PublishBookingCreated(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingCreated, event)
}

// PublishBookingPaid announces a settled booking
func (g *BookingGW) PublishBookingPaid(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingPaid, event)
}

// PublishBookingCancelled announces a cancelled booking
func (g *BookingGW) PublishBookingCancelled(_ context.Context, event *models.BookingEvent) error {
	return g.producer.Publish(constants.SubjectBookingCancelled, event)
}
