package adaptor

import (
	"flight-seating/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Menu *MenuHandler
	Seat *SeatHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Menu: NewMenuHandler(service.Seat, log),
		Seat: NewSeatHandler(service.Seat, log),
	}
}
