package entity

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	// BookingStatusUnsaved: the seat is taken in memory but the seat file
	// could not be written.
	BookingStatusUnsaved BookingStatus = "unsaved"
)

type Booking struct {
	BaseSimple
	Reference string
	Seat      Coordinate
	Status    BookingStatus
}
