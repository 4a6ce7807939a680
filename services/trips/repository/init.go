package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

// TripRepo implements the trip catalog repository interface
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository instance
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}
