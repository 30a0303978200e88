package entity

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNewGridRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 10, 0},
		{"negative", -1, 4},
		{"too many cols", 10, 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.rows, tt.cols); err == nil {
				t.Errorf("NewGrid(%d, %d) expected error", tt.rows, tt.cols)
			}
		})
	}
}

func TestGridGetSet(t *testing.T) {
	g := mustGrid(t, 10, 4)

	state, err := g.Get(3, 2)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if state != SeatAvailable {
		t.Errorf("new seat state = %v, want available", state)
	}

	if err := g.Set(3, 2, SeatTaken); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if state, _ := g.Get(3, 2); state != SeatTaken {
		t.Errorf("state after Set = %v, want taken", state)
	}
	// Neighbours untouched
	for _, c := range []Coordinate{{2, 2}, {4, 2}, {3, 1}, {3, 3}} {
		if state, _ := g.Get(c.Row, c.Col); state != SeatAvailable {
			t.Errorf("seat %s = %v, want available", c, state)
		}
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := mustGrid(t, 10, 4)

	for _, c := range []Coordinate{{-1, 0}, {10, 0}, {0, -1}, {0, 4}, {99, 99}} {
		if _, err := g.Get(c.Row, c.Col); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d, %d) err = %v, want ErrOutOfRange", c.Row, c.Col, err)
		}
		if err := g.Set(c.Row, c.Col, SeatTaken); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d, %d) err = %v, want ErrOutOfRange", c.Row, c.Col, err)
		}
	}

	if taken, _ := g.Counts(); taken != 0 {
		t.Errorf("out of range Set changed the grid: %d taken", taken)
	}
}

func TestOccupancy(t *testing.T) {
	g := mustGrid(t, 10, 4)
	if got := g.Occupancy(); got != 0 {
		t.Errorf("empty grid occupancy = %v, want 0", got)
	}

	_ = g.Set(0, 0, SeatTaken)
	if got := g.Occupancy(); got != 2.5 {
		t.Errorf("one seat occupancy = %v, want 2.5", got)
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			_ = g.Set(r, c, SeatTaken)
		}
	}
	if got := g.Occupancy(); got != 100 {
		t.Errorf("full grid occupancy = %v, want 100", got)
	}
}

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want string
	}{
		{Coordinate{0, 0}, "1A"},
		{Coordinate{4, 2}, "5C"},
		{Coordinate{9, 3}, "10D"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	if idx, ok := ColumnIndex('C', 4); !ok || idx != 2 {
		t.Errorf("ColumnIndex('C', 4) = %d, %v", idx, ok)
	}
	if _, ok := ColumnIndex('E', 4); ok {
		t.Error("ColumnIndex('E', 4) accepted a letter past the last column")
	}
	if _, ok := ColumnIndex('a', 4); ok {
		t.Error("ColumnIndex accepted a lowercase letter")
	}
}

func TestConflictErrorMatchesSentinel(t *testing.T) {
	var err error = &ConflictError{Seat: Coordinate{4, 2}}
	if !errors.Is(err, ErrConflict) {
		t.Error("ConflictError does not match ErrConflict")
	}
	if err.Error() != "seat 5C is not available" {
		t.Errorf("Error() = %q", err.Error())
	}
}
