package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"flight-seating/internal/data/entity"
	"flight-seating/internal/data/repository"
	"flight-seating/internal/dto/response"
	"flight-seating/pkg/utils"
)

// SeatService owns the loaded grid for the life of the process. Callers pass
// coordinates that are already validated against the grid dimensions.
type SeatService interface {
	// Assign books seat. A taken seat yields *entity.ConflictError and no
	// change. If the seat file cannot be written the seat stays taken in
	// memory and both the booking and an entity.ErrPersistence error are
	// returned.
	Assign(ctx context.Context, seat entity.Coordinate) (*response.BookingResponse, error)
	// Suggest lists the available neighbours of seat, nearest-first in the
	// fixed neighbour order. Empty means nothing nearby.
	Suggest(seat entity.Coordinate) []entity.Coordinate
	State(seat entity.Coordinate) (entity.SeatState, error)
	Occupancy() response.OccupancyResponse
	SeatMap() response.SeatMapResponse
	Dimensions() (rows, cols int)
}

type seatService struct {
	repo      repository.SeatRepository
	grid      *entity.Grid
	aisle     int
	available byte
	taken     byte

	// The menu is the only writer; the lock keeps the read-only status
	// API from observing a half-finished booking.
	mu sync.RWMutex
}

func NewSeatService(repo repository.SeatRepository, grid *entity.Grid, config utils.SeatConfig) SeatService {
	return &seatService{
		repo:      repo,
		grid:      grid,
		aisle:     config.Aisle,
		available: config.AvailableMarker[0],
		taken:     config.TakenMarker[0],
	}
}

func (s *seatService) Assign(ctx context.Context, seat entity.Coordinate) (*response.BookingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.grid.Get(seat.Row, seat.Col)
	if err != nil {
		return nil, fmt.Errorf("assign seat: %w", err)
	}
	if state == entity.SeatTaken {
		return nil, &entity.ConflictError{Seat: seat}
	}

	if err := s.grid.Set(seat.Row, seat.Col, entity.SeatTaken); err != nil {
		return nil, fmt.Errorf("assign seat: %w", err)
	}

	id := utils.GenerateUUID()
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Reference: utils.GenerateBookingRef(seat.String(), id),
		Seat:      seat,
		Status:    entity.BookingStatusConfirmed,
	}

	// No rollback: the seat stays taken even if the file lags behind.
	if err := s.repo.Save(ctx, s.grid); err != nil {
		booking.Status = entity.BookingStatusUnsaved
		resp := response.BookingToResponse(booking)
		return &resp, fmt.Errorf("save seat %s: %w", seat, err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *seatService) Suggest(seat entity.Coordinate) []entity.Coordinate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suggestions := slices.Collect(entity.Suggest(s.grid, seat))
	if suggestions == nil {
		return []entity.Coordinate{}
	}
	return suggestions
}

func (s *seatService) State(seat entity.Coordinate) (entity.SeatState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.grid.Get(seat.Row, seat.Col)
}

func (s *seatService) Occupancy() response.OccupancyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return response.OccupancyToResponse(s.grid)
}

func (s *seatService) SeatMap() response.SeatMapResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return response.SeatMapResponse{
		Rows:   s.grid.Rows(),
		Cols:   s.grid.Cols(),
		Layout: response.RenderLayout(s.grid, s.available, s.taken),
		Chart:  response.RenderChart(s.grid, s.aisle, s.available, s.taken),
	}
}

func (s *seatService) Dimensions() (rows, cols int) {
	return s.grid.Rows(), s.grid.Cols()
}
