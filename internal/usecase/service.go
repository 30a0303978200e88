package usecase

import (
	"flight-seating/internal/data/entity"
	"flight-seating/internal/data/repository"
	"flight-seating/pkg/utils"
)

type Service struct {
	Seat SeatService
}

func NewService(repo *repository.Repository, grid *entity.Grid, config utils.SeatConfig) *Service {
	return &Service{
		Seat: NewSeatService(repo.Seat, grid, config),
	}
}
