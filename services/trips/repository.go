package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridenaija/ridenaija/services/trips TripRepo

// TripRepo defines the trip catalog repository interface
type TripRepo interface {
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	SearchTrips(ctx context.Context, filter *models.TripFilter) ([]*models.Trip, error)
}
