package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"flight-seating/pkg/utils"
)

// Store is the byte-level backing for the seat file. Repositories depend on
// this rather than the filesystem so tests can swap in a fake.
type Store interface {
	// ReadAll returns an error matching fs.ErrNotExist when nothing is stored.
	ReadAll(ctx context.Context) ([]byte, error)
	// WriteAll replaces the stored content. It is not atomic.
	WriteAll(ctx context.Context, data []byte) error
	Path() string
}

// FileStore wrapper struct
type FileStore struct {
	path string
	perm os.FileMode
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, perm: 0o644}
}

// ReadAll implements Store
func (s *FileStore) ReadAll(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.path)
}

// WriteAll implements Store
func (s *FileStore) WriteAll(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, s.perm)
}

// Path implements Store
func (s *FileStore) Path() string {
	return s.path
}

// InitStore resolves the seat file path and checks that its directory exists.
// The file itself is not created; a missing seat file is reported on load.
func InitStore(config utils.SeatConfig) (Store, error) {
	path, err := filepath.Abs(config.File)
	if err != nil {
		return nil, fmt.Errorf("resolve seat file path: %w", err)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("seat file directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("seat file directory %s is not a directory", dir)
	}

	return NewFileStore(path), nil
}
