package wire

import (
	"flight-seating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/api/seats", func(r chi.Router) {
		// GET /api/seats - layout and rendered chart
		r.Get("/", seatHandler.GetSeatMap)

		// GET /api/seats/occupancy - taken/total and percentage
		r.Get("/occupancy", seatHandler.GetOccupancy)

		// GET /api/seats/{seat}/suggestions - nearby free seats, e.g. /api/seats/5C/suggestions
		r.Get("/{seat}/suggestions", seatHandler.GetSuggestions)
	})
}
