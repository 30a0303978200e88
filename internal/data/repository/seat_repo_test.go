package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"flight-seating/internal/data/entity"
	"flight-seating/pkg/database"
	"flight-seating/pkg/utils"
)

type memStore struct {
	data     []byte
	exists   bool
	readErr  error
	writeErr error
}

func (m *memStore) ReadAll(ctx context.Context) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if !m.exists {
		return nil, fmt.Errorf("open seats.txt: %w", fs.ErrNotExist)
	}
	return m.data, nil
}

func (m *memStore) WriteAll(ctx context.Context, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	m.exists = true
	return nil
}

func (m *memStore) Path() string { return "seats.txt" }

func referenceConfig() utils.SeatConfig {
	return utils.SeatConfig{
		File:            "seats.txt",
		Rows:            10,
		Cols:            4,
		Aisle:           2,
		AvailableMarker: ".",
		TakenMarker:     "X",
	}
}

const referenceLayout = "X...\n" +
	"..X.\n" +
	"....\n" +
	"XXXX\n" +
	"....\n" +
	"...X\n" +
	"....\n" +
	".X..\n" +
	"....\n" +
	"X..X\n"

func TestSeatRepositoryLoad(t *testing.T) {
	store := &memStore{data: []byte(referenceLayout), exists: true}
	repo := NewSeatRepository(store, referenceConfig())

	grid, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	taken := map[entity.Coordinate]bool{
		{Row: 0, Col: 0}: true, {Row: 1, Col: 2}: true, {Row: 3, Col: 0}: true, {Row: 3, Col: 1}: true, {Row: 3, Col: 2}: true, {Row: 3, Col: 3}: true,
		{Row: 5, Col: 3}: true, {Row: 7, Col: 1}: true, {Row: 9, Col: 0}: true, {Row: 9, Col: 3}: true,
	}
	for r := 0; r < 10; r++ {
		for c := 0; c < 4; c++ {
			state, err := grid.Get(r, c)
			if err != nil {
				t.Fatal(err)
			}
			want := entity.SeatAvailable
			if taken[entity.Coordinate{Row: r, Col: c}] {
				want = entity.SeatTaken
			}
			if state != want {
				t.Errorf("seat %s = %v, want %v", entity.Coordinate{Row: r, Col: c}, state, want)
			}
		}
	}
}

func TestSeatRepositoryLoadAcceptsCRLF(t *testing.T) {
	crlf := ""
	for i := 0; i < 10; i++ {
		crlf += "..X.\r\n"
	}
	repo := NewSeatRepository(&memStore{data: []byte(crlf), exists: true}, referenceConfig())

	grid, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if taken, _ := grid.Counts(); taken != 10 {
		t.Errorf("taken = %d, want 10", taken)
	}
}

func TestSeatRepositoryLoadCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"short row", "X..\n" + referenceLayout[5:]},
		{"long row", "X....\n" + referenceLayout[5:]},
		{"missing row", referenceLayout[5:]},
		{"extra row", referenceLayout + "....\n"},
		{"unknown marker", "X.O.\n" + referenceLayout[5:]},
		{"blank row inside", "X...\n\n" + referenceLayout[10:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewSeatRepository(&memStore{data: []byte(tt.data), exists: true}, referenceConfig())
			grid, err := repo.Load(context.Background())
			if !errors.Is(err, entity.ErrCorruptData) {
				t.Errorf("Load err = %v, want ErrCorruptData", err)
			}
			if grid != nil {
				t.Error("Load returned a grid for corrupt data")
			}
		})
	}
}

func TestSeatRepositoryLoadNotFound(t *testing.T) {
	repo := NewSeatRepository(&memStore{}, referenceConfig())
	if _, err := repo.Load(context.Background()); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Load err = %v, want ErrNotFound", err)
	}
}

func TestSeatRepositoryLoadReadFailure(t *testing.T) {
	readErr := errors.New("permission denied")
	repo := NewSeatRepository(&memStore{readErr: readErr}, referenceConfig())

	_, err := repo.Load(context.Background())
	if !errors.Is(err, entity.ErrPersistence) || !errors.Is(err, readErr) {
		t.Errorf("Load err = %v, want ErrPersistence wrapping the cause", err)
	}
}

func TestSeatRepositorySave(t *testing.T) {
	store := &memStore{}
	repo := NewSeatRepository(store, referenceConfig())

	grid, _ := entity.NewGrid(10, 4)
	_ = grid.Set(0, 0, entity.SeatTaken)
	_ = grid.Set(9, 3, entity.SeatTaken)

	if err := repo.Save(context.Background(), grid); err != nil {
		t.Fatalf("Save: %v", err)
	}

	want := "X...\n" + "....\n" + "....\n" + "....\n" + "....\n" +
		"....\n" + "....\n" + "....\n" + "....\n" + "...X\n"
	if string(store.data) != want {
		t.Errorf("saved =\n%s\nwant\n%s", store.data, want)
	}
}

func TestSeatRepositorySaveFailure(t *testing.T) {
	writeErr := errors.New("no space left on device")
	repo := NewSeatRepository(&memStore{writeErr: writeErr}, referenceConfig())
	grid, _ := entity.NewGrid(10, 4)

	err := repo.Save(context.Background(), grid)
	if !errors.Is(err, entity.ErrPersistence) || !errors.Is(err, writeErr) {
		t.Errorf("Save err = %v, want ErrPersistence wrapping the cause", err)
	}
}

func TestSeatRepositorySaveRejectsOtherDimensions(t *testing.T) {
	store := &memStore{}
	repo := NewSeatRepository(store, referenceConfig())
	grid, _ := entity.NewGrid(5, 4)

	if err := repo.Save(context.Background(), grid); !errors.Is(err, entity.ErrOutOfRange) {
		t.Errorf("Save err = %v, want ErrOutOfRange", err)
	}
	if store.exists {
		t.Error("Save wrote a grid with the wrong dimensions")
	}
}

func TestSeatRepositoryRoundTripOnDisk(t *testing.T) {
	cfg := referenceConfig()
	cfg.Rows, cfg.Cols = 3, 6
	cfg.AvailableMarker, cfg.TakenMarker = "o", "#"

	repo := NewSeatRepository(database.NewFileStore(filepath.Join(t.TempDir(), "seats.txt")), cfg)
	ctx := context.Background()

	grid, _ := entity.NewGrid(3, 6)
	for _, c := range []entity.Coordinate{{Row: 0, Col: 5}, {Row: 1, Col: 1}, {Row: 2, Col: 0}, {Row: 2, Col: 3}} {
		_ = grid.Set(c.Row, c.Col, entity.SeatTaken)
	}
	if err := repo.Save(ctx, grid); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 6; c++ {
			want, _ := grid.Get(r, c)
			got, _ := loaded.Get(r, c)
			if got != want {
				t.Errorf("seat (%d,%d) = %v after round trip, want %v", r, c, got, want)
			}
		}
	}
}
