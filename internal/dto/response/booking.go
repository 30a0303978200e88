package response

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"flight-seating/internal/data/entity"
)

type BookingResponse struct {
	ID        string               `json:"id"`
	Reference string               `json:"reference"`
	Seat      string               `json:"seat"`
	Status    entity.BookingStatus `json:"status"`
	BookedAt  time.Time            `json:"booked_at"`
}

type OccupancyResponse struct {
	Taken      int     `json:"taken"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Display    string  `json:"display"`
}

type SeatMapResponse struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Layout []string `json:"layout"`
	Chart  []string `json:"chart"`
}

type SuggestionResponse struct {
	Seat        string   `json:"seat"`
	State       string   `json:"state"`
	Suggestions []string `json:"suggestions"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:        booking.ID.String(),
		Reference: booking.Reference,
		Seat:      booking.Seat.String(),
		Status:    booking.Status,
		BookedAt:  booking.CreatedAt,
	}
}

func OccupancyToResponse(grid *entity.Grid) OccupancyResponse {
	taken, total := grid.Counts()
	pct := grid.Occupancy()
	return OccupancyResponse{
		Taken:      taken,
		Total:      total,
		Percentage: pct,
		Display:    fmt.Sprintf("%.1f%%", pct),
	}
}

func SeatCodes(seats []entity.Coordinate) []string {
	codes := make([]string, len(seats))
	for i, s := range seats {
		codes[i] = s.String()
	}
	return codes
}

// RenderChart draws the seating chart: a header of column letters, then one
// line per row numbered from 1. Row numbers are right-aligned, at least two
// wide. A two-space gap is inserted before column aisle; aisle 0 means no gap.
func RenderChart(grid *entity.Grid, aisle int, available, taken byte) []string {
	lines := make([]string, 0, grid.Rows()+1)
	width := max(2, len(strconv.Itoa(grid.Rows())))

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", width+1))
	for col := 0; col < grid.Cols(); col++ {
		if aisle > 0 && col == aisle {
			header.WriteString("  ")
		}
		header.WriteString(entity.ColumnLetter(col))
		header.WriteString("  ")
	}
	lines = append(lines, strings.TrimRight(header.String(), " "))

	for row := 0; row < grid.Rows(); row++ {
		var line strings.Builder
		fmt.Fprintf(&line, "%*d ", width, row+1)
		for col := 0; col < grid.Cols(); col++ {
			if aisle > 0 && col == aisle {
				line.WriteString("  ")
			}
			line.WriteByte(marker(grid, row, col, available, taken))
			line.WriteString("  ")
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return lines
}

// RenderLayout returns the grid as stored on disk, one string per row.
func RenderLayout(grid *entity.Grid, available, taken byte) []string {
	rows := make([]string, grid.Rows())
	buf := make([]byte, grid.Cols())
	for row := range rows {
		for col := range buf {
			buf[col] = marker(grid, row, col, available, taken)
		}
		rows[row] = string(buf)
	}
	return rows
}

func marker(grid *entity.Grid, row, col int, available, taken byte) byte {
	if state, _ := grid.Get(row, col); state == entity.SeatTaken {
		return taken
	}
	return available
}
