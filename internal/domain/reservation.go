package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation records one guest's stay in one room. Dates are never
// mutated in place; a change is a cancel followed by a new booking.
type Reservation struct {
	ID        string
	RoomID    string
	HotelID   string
	GuestID   string
	CheckIn   time.Time
	CheckOut  time.Time
	Status    ReservationStatus
	CreatedAt time.Time
}

// Stay returns the reservation's date interval.
func (r Reservation) Stay() Stay {
	return Stay{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}
