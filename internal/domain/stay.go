package domain

import "time"

// Stay is a half-open date interval [CheckIn, CheckOut) for one room.
// Both endpoints are date-only values (midnight UTC).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two stays share at least one night.
// The intervals are half-open, so a check-out on another stay's
// check-in date is not a conflict: the room turns over same-day.
func (s Stay) Overlaps(other Stay) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}

// Validate checks that a proposed stay is well-formed relative to today.
// Rules are ordered; the first failure wins.
func (s Stay) Validate(today time.Time) error {
	if s.CheckIn.Before(today) {
		return ErrPastCheckIn
	}
	if !s.CheckIn.Before(s.CheckOut) {
		return ErrInvalidStayRange
	}
	return nil
}

// ToDate truncates t to midnight UTC so stays compare by calendar day.
func ToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
