package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"flight-seating/internal/data/entity"
	"flight-seating/pkg/database"
	"flight-seating/pkg/utils"
)

// SeatRepository persists the seat grid as one line per row and one marker
// character per seat.
type SeatRepository interface {
	// Load parses the whole grid or nothing. It fails with entity.ErrNotFound
	// when the seat file is missing and entity.ErrCorruptData when the content
	// does not match the configured dimensions and markers.
	Load(ctx context.Context) (*entity.Grid, error)
	// Save overwrites the seat file. Failures wrap entity.ErrPersistence.
	Save(ctx context.Context, grid *entity.Grid) error
}

type seatRepository struct {
	store     database.Store
	rows      int
	cols      int
	available byte
	taken     byte
}

func NewSeatRepository(store database.Store, config utils.SeatConfig) SeatRepository {
	return &seatRepository{
		store:     store,
		rows:      config.Rows,
		cols:      config.Cols,
		available: config.AvailableMarker[0],
		taken:     config.TakenMarker[0],
	}
}

func (r *seatRepository) Load(ctx context.Context) (*entity.Grid, error) {
	data, err := r.store.ReadAll(ctx)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", r.store.Path(), entity.ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w: %w", r.store.Path(), entity.ErrPersistence, err)
	}

	grid, err := r.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.store.Path(), err)
	}

	return grid, nil
}

func (r *seatRepository) Save(ctx context.Context, grid *entity.Grid) error {
	if grid.Rows() != r.rows || grid.Cols() != r.cols {
		return fmt.Errorf("save %dx%d grid as %dx%d: %w",
			grid.Rows(), grid.Cols(), r.rows, r.cols, entity.ErrOutOfRange)
	}

	data, err := r.encode(grid)
	if err != nil {
		return err
	}

	if err := r.store.WriteAll(ctx, data); err != nil {
		return fmt.Errorf("write %s: %w: %w", r.store.Path(), entity.ErrPersistence, err)
	}

	return nil
}

func (r *seatRepository) decode(data []byte) (*entity.Grid, error) {
	content := strings.TrimRight(string(data), "\r\n")
	if content == "" {
		return nil, fmt.Errorf("empty seat file, want %d rows: %w", r.rows, entity.ErrCorruptData)
	}

	lines := strings.Split(content, "\n")
	if len(lines) != r.rows {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(lines), r.rows, entity.ErrCorruptData)
	}

	grid, err := entity.NewGrid(r.rows, r.cols)
	if err != nil {
		return nil, err
	}

	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != r.cols {
			return nil, fmt.Errorf("line %d has %d seats, want %d: %w",
				row+1, len(line), r.cols, entity.ErrCorruptData)
		}

		for col := 0; col < r.cols; col++ {
			var state entity.SeatState
			switch line[col] {
			case r.available:
				state = entity.SeatAvailable
			case r.taken:
				state = entity.SeatTaken
			default:
				return nil, fmt.Errorf("line %d column %d: unknown marker %q: %w",
					row+1, col+1, line[col], entity.ErrCorruptData)
			}
			if err := grid.Set(row, col, state); err != nil {
				return nil, err
			}
		}
	}

	return grid, nil
}

func (r *seatRepository) encode(grid *entity.Grid) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(r.rows * (r.cols + 1))

	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			state, err := grid.Get(row, col)
			if err != nil {
				return nil, err
			}
			if state == entity.SeatTaken {
				buf.WriteByte(r.taken)
			} else {
				buf.WriteByte(r.available)
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}
