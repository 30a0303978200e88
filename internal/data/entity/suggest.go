package entity

import "iter"

type offset struct{ dRow, dCol int }

// Orthogonal neighbours first, then diagonals. Callers rely on this order.
var (
	orthogonalOffsets = []offset{
		{-1, 0}, // up
		{1, 0},  // down
		{0, -1}, // left
		{0, 1},  // right
	}
	diagonalOffsets = []offset{
		{-1, -1}, // up-left
		{-1, 1},  // up-right
		{1, -1},  // down-left
		{1, 1},   // down-right
	}
)

// Suggest yields the available seats around seat in a fixed order.
// Diagonals are only scanned when seat is not in a window column, so a window
// seat only ever gets the seat in front, behind, or beside it.
func Suggest(g *Grid, seat Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, off := range neighbourOffsets(g, seat.Col) {
			candidate := Coordinate{Row: seat.Row + off.dRow, Col: seat.Col + off.dCol}
			state, err := g.Get(candidate.Row, candidate.Col)
			if err != nil || state != SeatAvailable {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

func neighbourOffsets(g *Grid, col int) []offset {
	if g.IsWindow(col) {
		return orthogonalOffsets
	}
	offsets := make([]offset, 0, len(orthogonalOffsets)+len(diagonalOffsets))
	offsets = append(offsets, orthogonalOffsets...)
	return append(offsets, diagonalOffsets...)
}
