package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips/mocks"
)

func TestSearchTrips_TrimsFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	uc := NewTripUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().
		SearchTrips(gomock.Any(), &models.TripFilter{From: "Lagos", To: "Abuja"}).
		Return([]*models.Trip{}, nil)

	_, err := uc.SearchTrips(context.Background(), &models.TripFilter{
		From: "  Lagos ",
		To:   " Abuja",
	})
	assert.NoError(t, err)
}

func TestSearchTrips_NilFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	uc := NewTripUC(mockRepo, &models.Config{})

	mockRepo.EXPECT().
		SearchTrips(gomock.Any(), &models.TripFilter{}).
		Return([]*models.Trip{}, nil)

	tripList, err := uc.SearchTrips(context.Background(), nil)
	assert.NoError(t, err)
	assert.NotNil(t, tripList)
}

func TestGetTrip_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTripRepo(ctrl)
	uc := NewTripUC(mockRepo, &models.Config{})

	tripID := uuid.New()
	mockRepo.EXPECT().
		GetTrip(gomock.Any(), tripID).
		Return(&models.Trip{ID: tripID}, nil)

	trip, err := uc.GetTrip(context.Background(), tripID)
	require.NoError(t, err)
	assert.Equal(t, tripID, trip.ID)
}

func TestCities(t *testing.T) {
	uc := NewTripUC(nil, &models.Config{})

	cities := uc.Cities()
	assert.Len(t, cities, 18)
	assert.Equal(t, "Lagos", cities[0].Name)
	assert.Equal(t, "south-west", cities[0].Region)
}

func TestRoutes(t *testing.T) {
	uc := NewTripUC(nil, &models.Config{})

	routes := uc.Routes()
	assert.Len(t, routes, 20)
	assert.Equal(t, "Lagos", routes[0].From)
	assert.Equal(t, "Abuja", routes[0].To)
	assert.Equal(t, int64(1500000), routes[0].Price)
}
