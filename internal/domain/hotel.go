package domain

import "time"

// Hotel is a managed property holding bookable rooms.
type Hotel struct {
	ID        string
	Name      string
	Rating    int
	Country   string
	City      string
	Address   string
	ManagerID string
	CreatedAt time.Time
}
