package bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrTripNotFound is returned when the trip being booked does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrBookingNotFound is returned when a ledger lookup finds nothing.
	// Bookings owned by other passengers are reported as not found, never
	// as forbidden, so booking IDs cannot be probed.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTripNotBookable is returned when the trip exists but is not open
	// for reservations: wrong status or a departure already in the past.
	ErrTripNotBookable = errors.New("trip is not available for booking")

	// ErrBookingNotCancellable is returned when the booking exists but is
	// already cancelled.
	ErrBookingNotCancellable = errors.New("booking is already cancelled")

	// ErrConcurrencyConflict is returned when a reservation attempt loses a
	// race: a reference collision or a serialization failure. Callers retry
	// with fresh references within a bounded budget.
	ErrConcurrencyConflict = errors.New("reservation conflict, retry")
)

// InsufficientSeatsError is returned when fewer seats remain than requested.
// Available carries the count left at decision time so the client can offer
// it to the user; it may already be stale when rendered.
type InsufficientSeatsError struct {
	Requested int
	Available int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats available: requested %d, available %d", e.Requested, e.Available)
}
