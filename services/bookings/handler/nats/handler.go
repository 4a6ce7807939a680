package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/ridenaija/ridenaija/internal/pkg/constants"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	natspkg "github.com/ridenaija/ridenaija/internal/pkg/nats"
	"github.com/ridenaija/ridenaija/services/bookings"
)

// NatsHandler consumes settlement events for the bookings service
type NatsHandler struct {
	bookingUC  bookings.BookingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler instance
func NewNatsHandler(bookingUC bookings.BookingUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		bookingUC:  bookingUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to settlement events. The queue group makes sure
// only one instance applies each settlement.
func (h *NatsHandler) InitConsumers() error {
	settledSub, err := h.natsClient.QueueSubscribe(constants.SubjectPaymentSettled, constants.QueueGroupBookings, func(msg *nats.Msg) {
		if err := h.handlePaymentSettled(msg.Data); err != nil {
			logger.Error("Error handling payment settled event",
				logger.Err(err),
				logger.String("data", string(msg.Data)))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to payment settled events: %w", err)
	}
	h.subs = append(h.subs, settledSub)

	return nil
}

// handlePaymentSettled processes a settlement result
func (h *NatsHandler) handlePaymentSettled(msg []byte) error {
	var event models.PaymentSettledEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment settled event: %w", err)
	}

	return h.bookingUC.ApplySettlement(context.Background(), &event)
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if sub != nil {
			_ = sub.Unsubscribe()
		}
	}
	h.subs = nil
}
