package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Amenities is an ordered list of amenity labels. The database stores it as
// a JSON-encoded text column; encoding happens only at the storage boundary.
type Amenities []string

// Value implements driver.Valuer for persisting amenities
func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode amenities: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for loading amenities
func (a *Amenities) Scan(src interface{}) error {
	if src == nil {
		*a = Amenities{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported amenities column type %T", src)
	}
	if len(raw) == 0 {
		*a = Amenities{}
		return nil
	}
	return json.Unmarshal(raw, a)
}

// Trip represents a scheduled intercity trip with finite seat capacity.
// AvailableSeats is mutated only by the reservation engine; everything else
// is display data owned by the ingestion process.
type Trip struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	DriverName     string     `json:"driver_name" db:"driver_name"`
	DriverRating   float64    `json:"driver_rating" db:"driver_rating"`
	FromLocation   string     `json:"from_location" db:"from_location"`
	ToLocation     string     `json:"to_location" db:"to_location"`
	DepartureTime  time.Time  `json:"departure_time" db:"departure_time"`
	ArrivalTime    time.Time  `json:"arrival_time" db:"arrival_time"`
	AvailableSeats int        `json:"available_seats" db:"available_seats"`
	SeatCapacity   int        `json:"seat_capacity" db:"seat_capacity"`
	PricePerSeat   int64      `json:"price_per_seat" db:"price_per_seat"` // in kobo
	CarModel       string     `json:"car_model" db:"car_model"`
	CarPlate       string     `json:"car_plate" db:"car_plate"`
	CarType        string     `json:"car_type" db:"car_type"`
	Amenities      Amenities  `json:"amenities" db:"amenities"`
	Status         TripStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// TripFilter narrows trip catalog searches
type TripFilter struct {
	From string
	To   string
	Date string // YYYY-MM-DD, matches the departure day
}

// City is a static catalog entry for supported cities
type City struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Region string `json:"region"`
}

// Route is a static catalog entry describing a served corridor
type Route struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	Price    int64  `json:"price"` // in kobo
	Region   string `json:"region"`
}
