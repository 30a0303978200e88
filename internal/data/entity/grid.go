package entity

import "fmt"

// Grid is a fixed rows x cols block of seats. Cells are only reachable
// through Get and Set, which enforce the bounds.
type Grid struct {
	rows  int
	cols  int
	cells []SeatState
}

// NewGrid returns a grid with every seat available.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", rows, cols)
	}
	if cols > MaxCols {
		return nil, fmt.Errorf("invalid grid size %dx%d: at most %d columns", rows, cols, MaxCols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]SeatState, rows*cols),
	}, nil
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) Get(row, col int) (SeatState, error) {
	if !g.Contains(row, col) {
		return SeatAvailable, g.outOfRange(row, col)
	}
	return g.cells[row*g.cols+col], nil
}

func (g *Grid) Set(row, col int, state SeatState) error {
	if !g.Contains(row, col) {
		return g.outOfRange(row, col)
	}
	g.cells[row*g.cols+col] = state
	return nil
}

// Counts returns the number of taken seats and the grid capacity.
func (g *Grid) Counts() (taken, total int) {
	for _, s := range g.cells {
		if s == SeatTaken {
			taken++
		}
	}
	return taken, len(g.cells)
}

// Occupancy returns the percentage of taken seats, 0..100.
func (g *Grid) Occupancy() float64 {
	taken, total := g.Counts()
	return float64(taken) * 100 / float64(total)
}

// IsWindow reports whether col is the first or last column.
func (g *Grid) IsWindow(col int) bool {
	return col == 0 || col == g.cols-1
}

func (g *Grid) outOfRange(row, col int) error {
	return fmt.Errorf("row %d col %d in %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfRange)
}
