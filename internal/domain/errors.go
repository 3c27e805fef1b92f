package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPastCheckIn      = errors.New("check-in date is in the past")
	ErrInvalidStayRange = errors.New("check-in must be before check-out")
	ErrRoomUnavailable  = errors.New("room unavailable for the requested dates")

	ErrHotelNotFound       = errors.New("hotel not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrAlreadyCancelled = errors.New("reservation already cancelled")
	ErrNotOwner         = errors.New("reservation belongs to another guest")

	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	ErrHotelNameRequired = errors.New("hotel name required")
	ErrRoomNameRequired  = errors.New("room name required")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInvalidID         = errors.New("invalid id")
)

// StayConflictError reports a booking rejected because the room is
// already reserved for an overlapping interval. It carries the first
// conflicting reservation found so callers can offer alternatives.
type StayConflictError struct {
	Conflicting Reservation
}

func (e *StayConflictError) Error() string {
	return fmt.Sprintf("room %s already booked from %s to %s",
		e.Conflicting.RoomID,
		e.Conflicting.CheckIn.Format("2006-01-02"),
		e.Conflicting.CheckOut.Format("2006-01-02"),
	)
}

// Is lets errors.Is(err, ErrRoomUnavailable) match a StayConflictError.
func (e *StayConflictError) Is(target error) bool {
	return target == ErrRoomUnavailable
}
