package events

import (
	"encoding/json"
	"time"
)

const (
	TopicReservations = "hotel.reservations"

	EventReservationCreated   = "ReservationCreated"
	EventReservationCancelled = "ReservationCancelled"
)

// Envelope wraps every published event with routing metadata.
type Envelope struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	Payload    json.RawMessage `json:"payload"`
}

type ReservationPayload struct {
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	HotelID       string `json:"hotel_id"`
	GuestID       string `json:"guest_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Status        string `json:"status"`
}
