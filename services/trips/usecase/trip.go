package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

// GetTrip returns the trip with the given ID
func (u *TripUC) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	return u.tripRepo.GetTrip(ctx, id)
}

// SearchTrips returns bookable trips matching the filter. Location filters
// are trimmed before the query; an empty filter lists everything bookable.
func (u *TripUC) SearchTrips(ctx context.Context, filter *models.TripFilter) ([]*models.Trip, error) {
	if filter == nil {
		filter = &models.TripFilter{}
	}
	filter.From = strings.TrimSpace(filter.From)
	filter.To = strings.TrimSpace(filter.To)
	filter.Date = strings.TrimSpace(filter.Date)

	return u.tripRepo.SearchTrips(ctx, filter)
}
