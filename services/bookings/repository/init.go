package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/ridenaija/ridenaija/internal/pkg/models"
)

// BookingRepo implements the booking ledger repository interface
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepo creates a new booking repository instance
func NewBookingRepo(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}
