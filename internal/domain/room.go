package domain

import "time"

// Room belongs to exactly one hotel. It carries no availability flag:
// availability is always derived from the active reservation set so there
// is no second source of truth to drift out of sync.
type Room struct {
	ID         string
	HotelID    string
	Name       string
	PriceCents int64
	CreatedAt  time.Time
}

// RoomFilter narrows room listings. Zero values mean "no constraint".
type RoomFilter struct {
	HotelID       string
	MinPriceCents int64
	MaxPriceCents int64
}
