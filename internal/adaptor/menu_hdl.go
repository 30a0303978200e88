package adaptor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"flight-seating/internal/data/entity"
	"flight-seating/internal/dto/request"
	"flight-seating/internal/usecase"

	"go.uber.org/zap"
)

const menuText = `
Select choice from menu:
D to display seat chart
P to purchase a seat
S to compute statistics
Q to quit
`

// MenuHandler runs the interactive seat menu over a line-oriented reader and
// writer. It owns every passenger-facing message.
type MenuHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.SeatService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// Run loops over menu choices until Q or end of input.
func (h *MenuHandler) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(out, menuText)
		fmt.Fprint(out, "\nEnter your choice: ")

		choice, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(out)
			return endOfInput(err)
		}

		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "D":
			h.Display(out)
		case "P":
			if err := h.Purchase(ctx, reader, out); err != nil {
				fmt.Fprintln(out)
				return endOfInput(err)
			}
		case "S":
			h.Statistics(out)
		case "Q":
			fmt.Fprintln(out, "Exiting program...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

func (h *MenuHandler) Display(out io.Writer) {
	fmt.Fprintln(out, "\nSeating Chart: ")
	for _, line := range h.service.SeatMap().Chart {
		fmt.Fprintln(out, line)
	}
}

func (h *MenuHandler) Statistics(out io.Writer) {
	fmt.Fprintf(out, "Plane occupancy: %s\n", h.service.Occupancy().Display)
}

// Purchase prompts until a seat is booked, the passenger enters an empty
// line, or the booking cannot be saved. It only fails when input does.
func (h *MenuHandler) Purchase(ctx context.Context, reader *bufio.Reader, out io.Writer) error {
	rows, cols := h.service.Dimensions()

	for {
		fmt.Fprint(out, "Enter your row number and column letter (ex. 1A): ")
		line, err := readLine(reader)
		if err != nil {
			return err
		}

		req := request.NewSeatRequest(line)
		if req.Code == "" {
			return nil
		}

		seat, err := req.Parse(rows, cols)
		if err != nil {
			fmt.Fprintln(out, parseMessage(err))
			continue
		}

		booking, err := h.service.Assign(ctx, seat)
		var conflict *entity.ConflictError
		switch {
		case err == nil:
			h.log.Info("Seat booked",
				zap.String("seat", booking.Seat),
				zap.String("reference", booking.Reference),
			)
			fmt.Fprintf(out, "Seat %s has been successfully booked!\n", req.Code)
			return nil

		case errors.As(err, &conflict):
			h.log.Debug("Seat already taken", zap.String("seat", conflict.Seat.String()))
			fmt.Fprintf(out, "Seat %s is not available.\n", req.Code)
			h.suggest(out, conflict.Seat)
			continue

		case errors.Is(err, entity.ErrPersistence):
			h.log.Error("Seat booked but seat file not updated",
				zap.Error(err),
				zap.String("seat", seat.String()),
				zap.String("reference", booking.Reference),
			)
			fmt.Fprintf(out, "Seat %s has been successfully booked!\n", req.Code)
			fmt.Fprintf(out, "Error updating seat data file: %v\n", err)
			return nil

		default:
			h.log.Error("Failed to assign seat", zap.Error(err), zap.String("seat", seat.String()))
			fmt.Fprintf(out, "Could not book seat %s: %v\n", req.Code, err)
			return nil
		}
	}
}

func (h *MenuHandler) suggest(out io.Writer, seat entity.Coordinate) {
	suggestions := h.service.Suggest(seat)
	if len(suggestions) == 0 {
		fmt.Fprintln(out, "No nearby available seats. Please try again later.")
		return
	}
	for _, s := range suggestions {
		fmt.Fprintf(out, "Nearby available seat: %s\n", s)
	}
}

// readLine returns one line without its terminator, however long it is.
// A final line without a newline still counts.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func parseMessage(err error) string {
	switch {
	case errors.Is(err, request.ErrSeatRow):
		return "Invalid row number. Please try again."
	case errors.Is(err, request.ErrSeatColumn):
		return "Invalid column letter. Please try again."
	default:
		return "Invalid input. Please enter a row number and column letter (e.g., 1A)."
	}
}
