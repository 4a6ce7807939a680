package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridenaija/ridenaija/services/trips TripUC

// TripUC represents the trip catalog usecase interface
type TripUC interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	SearchTrips(ctx context.Context, filter *models.TripFilter) ([]*models.Trip, error)
	Cities() []models.City
	Routes() []models.Route
}
