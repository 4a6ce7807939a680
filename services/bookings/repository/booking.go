package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/bookings"
)

// Postgres error codes that mean the attempt lost a race and is safe to
// retry with fresh references.
const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// lockedTrip is the slice of the trip row read under FOR UPDATE
type lockedTrip struct {
	ID             uuid.UUID         `db:"id"`
	FromLocation   string            `db:"from_location"`
	ToLocation     string            `db:"to_location"`
	DepartureTime  time.Time         `db:"departure_time"`
	ArrivalTime    time.Time         `db:"arrival_time"`
	AvailableSeats int               `db:"available_seats"`
	PricePerSeat   int64             `db:"price_per_seat"`
	DriverName     string            `db:"driver_name"`
	CarModel       string            `db:"car_model"`
	CarPlate       string            `db:"car_plate"`
	Status         models.TripStatus `db:"status"`
}

// bookingRow joins a booking with its trip projection for ledger reads
type bookingRow struct {
	models.Booking
	models.BookingTripDetails
}

const bookingColumns = `
	b.id, b.trip_id, b.passenger_id, b.seats, b.total_price, b.status,
	b.payment_status, b.notes, b.booking_reference, b.receipt_number, b.created_at
`

const tripProjection = `
	t.from_location, t.to_location, t.departure_time, t.arrival_time,
	t.price_per_seat, t.driver_name, t.car_model, t.car_plate
`

// CreateBooking reserves seats inside a single transaction. The trip row is
// locked first, so validation and the seat decrement see the same state no
// matter how many reservations race on the trip. The available_seats guard
// on the UPDATE is the last line of defense against overselling.
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var trip lockedTrip
	lockQuery := `
		SELECT id, from_location, to_location, departure_time, arrival_time,
			available_seats, price_per_seat, driver_name, car_model, car_plate, status
		FROM trips
		WHERE id = $1
		FOR UPDATE
	`
	err = tx.GetContext(ctx, &trip, lockQuery, booking.TripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bookings.ErrTripNotFound
		}
		return mapConcurrencyError(err, "failed to lock trip")
	}

	if trip.Status != models.TripStatusScheduled || !trip.DepartureTime.After(time.Now()) {
		return bookings.ErrTripNotBookable
	}
	if trip.AvailableSeats < booking.Seats {
		return &bookings.InsufficientSeatsError{
			Requested: booking.Seats,
			Available: trip.AvailableSeats,
		}
	}

	booking.ID = uuid.New()
	booking.TotalPrice = int64(booking.Seats) * trip.PricePerSeat
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentStatus = models.PaymentStatusPending
	booking.CreatedAt = time.Now()

	insertQuery := `
		INSERT INTO bookings (id, trip_id, passenger_id, seats, total_price,
			status, payment_status, notes, booking_reference, receipt_number, created_at)
		VALUES (:id, :trip_id, :passenger_id, :seats, :total_price,
			:status, :payment_status, :notes, :booking_reference, :receipt_number, :created_at)
	`
	_, err = tx.NamedExecContext(ctx, insertQuery, booking)
	if err != nil {
		return mapConcurrencyError(err, "failed to insert booking")
	}

	decrementQuery := `
		UPDATE trips
		SET available_seats = available_seats - $1
		WHERE id = $2 AND available_seats >= $1
	`
	res, err := tx.ExecContext(ctx, decrementQuery, booking.Seats, booking.TripID)
	if err != nil {
		return mapConcurrencyError(err, "failed to decrement seats")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read decrement result: %w", err)
	}
	if affected == 0 {
		// The lock should make this unreachable; treat it as a lost race
		return bookings.ErrConcurrencyConflict
	}

	if err = tx.Commit(); err != nil {
		return mapConcurrencyError(err, "failed to commit reservation")
	}

	booking.TripDetails = &models.BookingTripDetails{
		FromLocation:  trip.FromLocation,
		ToLocation:    trip.ToLocation,
		DepartureTime: trip.DepartureTime,
		ArrivalTime:   trip.ArrivalTime,
		PricePerSeat:  trip.PricePerSeat,
		DriverName:    trip.DriverName,
		CarModel:      trip.CarModel,
		CarPlate:      trip.CarPlate,
	}

	return nil
}

// GetBooking returns a booking with its trip projection. Ownership is part
// of the query, so foreign bookings are indistinguishable from missing ones.
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE b.id = $1 AND b.passenger_id = $2
	`, bookingColumns, tripProjection)

	var row bookingRow
	err := r.db.GetContext(ctx, &row, query, bookingID, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return row.toBooking(), nil
}

// ListUserBookings returns the passenger's ledger, newest first
func (r *BookingRepo) ListUserBookings(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE b.passenger_id = $1
		ORDER BY b.created_at DESC
	`, bookingColumns, tripProjection)

	rows := []bookingRow{}
	err := r.db.SelectContext(ctx, &rows, query, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookingList := make([]*models.Booking, 0, len(rows))
	for i := range rows {
		bookingList = append(bookingList, rows[i].toBooking())
	}

	return bookingList, nil
}

// UpdatePaymentStatus transitions the payment status and returns the
// updated booking. Ownership is enforced in the query.
func (r *BookingRepo) UpdatePaymentStatus(ctx context.Context, bookingID, passengerID uuid.UUID, status models.PaymentStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1
		WHERE id = $2 AND passenger_id = $3
		RETURNING id, trip_id, passenger_id, seats, total_price, status,
			payment_status, notes, booking_reference, receipt_number, created_at
	`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, status, bookingID, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return &booking, nil
}

// CancelBooking cancels the booking and returns its seats to the trip. The
// booking row is locked first so a racing settlement or double cancel sees a
// consistent state. The seat restore is capped by the trip's capacity.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID, passengerID uuid.UUID) (*models.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	lockQuery := `
		SELECT id, trip_id, passenger_id, seats, total_price, status,
			payment_status, notes, booking_reference, receipt_number, created_at
		FROM bookings
		WHERE id = $1 AND passenger_id = $2
		FOR UPDATE
	`
	err = tx.GetContext(ctx, &booking, lockQuery, bookingID, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookings.ErrBookingNotFound
		}
		return nil, mapConcurrencyError(err, "failed to lock booking")
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, bookings.ErrBookingNotCancellable
	}

	_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`,
		models.BookingStatusCancelled, booking.ID)
	if err != nil {
		return nil, mapConcurrencyError(err, "failed to cancel booking")
	}

	restoreQuery := `
		UPDATE trips
		SET available_seats = available_seats + $1
		WHERE id = $2 AND available_seats + $1 <= seat_capacity
	`
	res, err := tx.ExecContext(ctx, restoreQuery, booking.Seats, booking.TripID)
	if err != nil {
		return nil, mapConcurrencyError(err, "failed to restore seats")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read restore result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("seat restore for trip %s would exceed capacity", booking.TripID)
	}

	if err = tx.Commit(); err != nil {
		return nil, mapConcurrencyError(err, "failed to commit cancellation")
	}

	booking.Status = models.BookingStatusCancelled
	return &booking, nil
}

// toBooking splits the joined row back into a booking with its projection
func (row *bookingRow) toBooking() *models.Booking {
	booking := row.Booking
	details := row.BookingTripDetails
	booking.TripDetails = &details
	return &booking
}

// mapConcurrencyError collapses retryable database failures into
// ErrConcurrencyConflict and wraps everything else.
func mapConcurrencyError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation, serializationFailure, deadlockDetected:
			return bookings.ErrConcurrencyConflict
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
