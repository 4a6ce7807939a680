package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips"
)

const tripColumns = `
	id, driver_name, driver_rating, from_location, to_location,
	departure_time, arrival_time, available_seats, seat_capacity,
	price_per_seat, car_model, car_plate, car_type, amenities, status, created_at
`

// GetTrip retrieves a single trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE id = $1`, tripColumns)

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// SearchTrips returns bookable trips matching the filter, soonest departure
// first. Only scheduled trips with seats left and a future departure are
// listed; fully booked trips never appear in results.
func (r *TripRepo) SearchTrips(ctx context.Context, filter *models.TripFilter) ([]*models.Trip, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM trips
		WHERE status = 'scheduled'
		  AND departure_time > NOW()
		  AND available_seats > 0
	`, tripColumns)

	args := []interface{}{}
	argPos := 1

	if filter.From != "" {
		query += fmt.Sprintf(" AND from_location ILIKE $%d", argPos)
		args = append(args, filter.From)
		argPos++
	}
	if filter.To != "" {
		query += fmt.Sprintf(" AND to_location ILIKE $%d", argPos)
		args = append(args, filter.To)
		argPos++
	}
	if filter.Date != "" {
		day, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date filter: %w", err)
		}
		query += fmt.Sprintf(" AND departure_time >= $%d AND departure_time < $%d", argPos, argPos+1)
		args = append(args, day, day.AddDate(0, 0, 1))
		argPos += 2
	}

	query += " ORDER BY departure_time ASC"

	tripList := []*models.Trip{}
	err := r.db.SelectContext(ctx, &tripList, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search trips: %w", err)
	}

	return tripList, nil
}
