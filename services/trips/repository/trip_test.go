package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips"
)

func setupTripRepoTest(t *testing.T) (*TripRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &TripRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func tripRows(ids ...uuid.UUID) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "driver_name", "driver_rating", "from_location", "to_location",
		"departure_time", "arrival_time", "available_seats", "seat_capacity",
		"price_per_seat", "car_model", "car_plate", "car_type", "amenities", "status", "created_at",
	})
	departure := time.Now().Add(24 * time.Hour)
	for i, id := range ids {
		rows.AddRow(
			id, "John Driver", 4.8, "Lagos", "Abuja",
			departure.Add(time.Duration(i)*time.Hour), departure.Add(11*time.Hour), 10, 14,
			int64(1500000), "Toyota Hiace", "RNJ001", "Bus", `["AC","Charging Ports"]`, "scheduled", time.Now(),
		)
	}
	return rows
}

func TestGetTrip(t *testing.T) {
	tripID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, trip *models.Trip, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
					WithArgs(tripID).
					WillReturnRows(tripRows(tripID))
			},
			assertFunc: func(t *testing.T, trip *models.Trip, err error) {
				assert.NoError(t, err)
				require.NotNil(t, trip)
				assert.Equal(t, tripID, trip.ID)
				assert.Equal(t, "Lagos", trip.FromLocation)
				assert.Equal(t, models.Amenities{"AC", "Charging Ports"}, trip.Amenities)
				assert.Equal(t, int64(1500000), trip.PricePerSeat)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
					WithArgs(tripID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, trip *models.Trip, err error) {
				assert.ErrorIs(t, err, trips.ErrTripNotFound)
				assert.Nil(t, trip)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTripRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			trip, err := repo.GetTrip(context.Background(), tripID)
			tc.assertFunc(t, trip, err)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSearchTrips_NoFilter(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(tripRows(uuid.New(), uuid.New()))

	tripList, err := repo.SearchTrips(context.Background(), &models.TripFilter{})
	assert.NoError(t, err)
	assert.Len(t, tripList, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTrips_WithFilters(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	day, _ := time.Parse("2006-01-02", "2026-09-01")
	mock.ExpectQuery("SELECT (.+) FROM trips").
		WithArgs("Lagos", "Abuja", day, day.AddDate(0, 0, 1)).
		WillReturnRows(tripRows(uuid.New()))

	tripList, err := repo.SearchTrips(context.Background(), &models.TripFilter{
		From: "Lagos",
		To:   "Abuja",
		Date: "2026-09-01",
	})
	assert.NoError(t, err)
	assert.Len(t, tripList, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchTrips_InvalidDate(t *testing.T) {
	repo, _, cleanup := setupTripRepoTest(t)
	defer cleanup()

	tripList, err := repo.SearchTrips(context.Background(), &models.TripFilter{Date: "not-a-date"})
	assert.Error(t, err)
	assert.Nil(t, tripList)
}

func TestSearchTrips_EmptyResult(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(tripRows())

	tripList, err := repo.SearchTrips(context.Background(), &models.TripFilter{})
	assert.NoError(t, err)
	assert.NotNil(t, tripList)
	assert.Len(t, tripList, 0)
}
