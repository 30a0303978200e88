package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange means a caller passed a coordinate outside the grid.
	// The seat parser never does, so seeing this points at a boundary bug.
	ErrOutOfRange = errors.New("seat out of range")

	// ErrConflict is returned when the requested seat is already taken.
	ErrConflict = errors.New("seat already taken")

	// ErrPersistence wraps any failure to read or write the seat file other
	// than the file being absent.
	ErrPersistence = errors.New("seat file persistence failure")

	// ErrCorruptData means the seat file does not describe a full grid.
	ErrCorruptData = errors.New("corrupt seat data")

	// ErrNotFound means the seat file does not exist.
	ErrNotFound = errors.New("seat file not found")
)

// ConflictError reports the seat that could not be booked.
type ConflictError struct {
	Seat Coordinate
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seat %s is not available", e.Seat)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
