package repository

import (
	"flight-seating/pkg/database"
	"flight-seating/pkg/utils"
)

type Repository struct {
	Seat SeatRepository
}

func NewRepository(store database.Store, config utils.SeatConfig) *Repository {
	return &Repository{
		Seat: NewSeatRepository(store, config),
	}
}
