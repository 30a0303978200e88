package entity

import "fmt"

type SeatState int

const (
	SeatAvailable SeatState = iota
	SeatTaken
)

func (s SeatState) String() string {
	switch s {
	case SeatAvailable:
		return "available"
	case SeatTaken:
		return "taken"
	default:
		return fmt.Sprintf("SeatState(%d)", int(s))
	}
}

// MaxCols is bounded by the column letters A..Z.
const MaxCols = 26

// Coordinate is a zero-based (row, column) seat position.
type Coordinate struct {
	Row int
	Col int
}

// String renders the passenger-facing seat code, e.g. {4, 2} -> "5C".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d%s", c.Row+1, ColumnLetter(c.Col))
}

// ColumnLetter maps a zero-based column index to its letter. Indices outside
// A..Z render as "?".
func ColumnLetter(col int) string {
	if col < 0 || col >= MaxCols {
		return "?"
	}
	return string(rune('A' + col))
}

// ColumnIndex is the inverse of ColumnLetter for a grid with cols columns.
func ColumnIndex(letter byte, cols int) (int, bool) {
	idx := int(letter) - 'A'
	if idx < 0 || idx >= cols || idx >= MaxCols {
		return 0, false
	}
	return idx, true
}
