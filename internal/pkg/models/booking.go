package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the settlement state of a booking
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Booking represents a rider's claim on seats of a trip. Seats and
// TotalPrice are frozen at creation time and never recomputed; the trip
// details carried alongside are a read-time projection.
type Booking struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	TripID           uuid.UUID     `json:"trip_id" db:"trip_id"`
	PassengerID      uuid.UUID     `json:"-" db:"passenger_id"`
	Seats            int           `json:"seats" db:"seats"`
	TotalPrice       int64         `json:"total_price" db:"total_price"` // in kobo, frozen at creation
	Status           BookingStatus `json:"status" db:"status"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	Notes            string        `json:"notes,omitempty" db:"notes"`
	BookingReference string        `json:"booking_reference" db:"booking_reference"`
	ReceiptNumber    string        `json:"receipt_number" db:"receipt_number"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`

	TripDetails *BookingTripDetails `json:"trip_details,omitempty"`
}

// BookingTripDetails is the trip projection attached to ledger reads. It is
// resolved from the current trip row at read time, not copied at booking.
type BookingTripDetails struct {
	FromLocation  string    `json:"from_location" db:"from_location"`
	ToLocation    string    `json:"to_location" db:"to_location"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
	PricePerSeat  int64     `json:"price_per_seat" db:"price_per_seat"`
	DriverName    string    `json:"driver_name" db:"driver_name"`
	CarModel      string    `json:"car_model" db:"car_model"`
	CarPlate      string    `json:"car_plate" db:"car_plate"`
}

// ReserveRequest is the payload for creating a booking
type ReserveRequest struct {
	TripID uuid.UUID `json:"trip_id"`
	Seats  int       `json:"seats"`
	Notes  string    `json:"notes"`
}

// BookingConfirmation is returned after a successful reservation
type BookingConfirmation struct {
	Booking  *Booking `json:"booking"`
	Redirect string   `json:"redirect"`
}

// BookingEvent is published on booking lifecycle changes
type BookingEvent struct {
	BookingID        uuid.UUID `json:"booking_id"`
	TripID           uuid.UUID `json:"trip_id"`
	PassengerID      uuid.UUID `json:"passenger_id"`
	Seats            int       `json:"seats"`
	TotalPrice       int64     `json:"total_price"`
	BookingReference string    `json:"booking_reference"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// PaymentSettledEvent is consumed from the external settlement collaborator
type PaymentSettledEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	Status      string    `json:"status"` // "paid" or "failed"
	SettledAt   time.Time `json:"settled_at"`
}

// PaymentReceipt is returned after a settlement is applied
type PaymentReceipt struct {
	BookingReference string    `json:"booking_reference"`
	ReceiptNumber    string    `json:"receipt_number"`
	TotalAmount      int64     `json:"total_amount"`
	PaymentDate      time.Time `json:"payment_date"`
}
