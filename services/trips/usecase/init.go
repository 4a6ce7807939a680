package usecase

import (
	"github.com/ridenaija/ridenaija/internal/pkg/models"
	"github.com/ridenaija/ridenaija/services/trips"
)

type TripUC struct {
	tripRepo trips.TripRepo
	cfg      *models.Config
}

// NewTripUC creates a new trip catalog usecase instance
func NewTripUC(
	tripRepo trips.TripRepo,
	cfg *models.Config,
) *TripUC {
	return &TripUC{
		tripRepo: tripRepo,
		cfg:      cfg,
	}
}
