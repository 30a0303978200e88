package adaptor

import (
	"net/http"

	"flight-seating/internal/dto/request"
	"flight-seating/internal/dto/response"
	"flight-seating/internal/usecase"
	"flight-seating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeatHandler serves a read-only view of the seat grid. Booking stays with
// the menu.
type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeatMap handles GET /api/seats
func (h *SeatHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.SeatMap())
}

// GetOccupancy handles GET /api/seats/occupancy
func (h *SeatHandler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Occupancy())
}

// GetSuggestions handles GET /api/seats/{seat}/suggestions
func (h *SeatHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	req := request.NewSeatRequest(chi.URLParam(r, "seat"))
	rows, cols := h.service.Dimensions()

	seat, err := req.Parse(rows, cols)
	if err != nil {
		h.log.Warn("Invalid seat code", zap.String("seat", req.Code), zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid seat", map[string]string{"seat": parseMessage(err)})
		return
	}

	state, err := h.service.State(seat)
	if err != nil {
		h.handleServiceError(w, err, "get seat state")
		return
	}

	utils.ResponseSuccess(w, "success", response.SuggestionResponse{
		Seat:        seat.String(),
		State:       state.String(),
		Suggestions: response.SeatCodes(h.service.Suggest(seat)),
	})
}

// handleServiceError logs err and hides it behind a 500. Every seat reaching
// the service has been parsed against the grid, so this is a server bug.
func (h *SeatHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
