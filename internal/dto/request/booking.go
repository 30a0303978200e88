package request

import (
	"errors"
	"strconv"
	"strings"

	"flight-seating/internal/data/entity"
	"flight-seating/pkg/utils"
)

var (
	ErrSeatFormat = errors.New("invalid seat format")
	ErrSeatRow    = errors.New("invalid row number")
	ErrSeatColumn = errors.New("invalid column letter")
)

// SeatRequest is a raw seat code typed by a passenger, e.g. "5C".
type SeatRequest struct {
	Code string `json:"seat" validate:"required"`
}

// seatParts splits a code into its row digits and column letter.
type seatParts struct {
	Row    string `validate:"required,number"`
	Column string `validate:"required,alpha"`
}

func NewSeatRequest(raw string) SeatRequest {
	return SeatRequest{Code: strings.ToUpper(strings.TrimSpace(raw))}
}

// Parse turns the code into a zero-based coordinate inside a rows x cols
// grid. The row part is 1-based, the column is a single letter.
func (r SeatRequest) Parse(rows, cols int) (entity.Coordinate, error) {
	if errs := utils.ValidateStruct(r); len(errs) > 0 {
		return entity.Coordinate{}, ErrSeatFormat
	}
	maxLen := len(strconv.Itoa(rows)) + 1
	if len(r.Code) < 2 || len(r.Code) > maxLen {
		return entity.Coordinate{}, ErrSeatFormat
	}

	parts := seatParts{
		Row:    r.Code[:len(r.Code)-1],
		Column: r.Code[len(r.Code)-1:],
	}
	errs := utils.ValidateStruct(parts)
	if _, bad := errs["Row"]; bad {
		return entity.Coordinate{}, ErrSeatRow
	}

	row, err := strconv.Atoi(parts.Row)
	if err != nil || row < 1 || row > rows {
		return entity.Coordinate{}, ErrSeatRow
	}

	if _, bad := errs["Column"]; bad {
		return entity.Coordinate{}, ErrSeatColumn
	}
	col, ok := entity.ColumnIndex(parts.Column[0], cols)
	if !ok {
		return entity.Coordinate{}, ErrSeatColumn
	}

	return entity.Coordinate{Row: row - 1, Col: col}, nil
}
