package app

import (
	"context"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type RoomRepository interface {
	CreateRoom(ctx context.Context, room domain.Room) error
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, room domain.Room) error
	DeleteRoom(ctx context.Context, id string) error
}

type RoomService struct {
	repo  RoomRepository
	clock clock.Clock
}

func NewRoomService(repo RoomRepository, clk clock.Clock) *RoomService {
	return &RoomService{
		repo:  repo,
		clock: clk,
	}
}

type CreateRoomInput struct {
	HotelID    string
	Name       string
	PriceCents int64
}

func (s *RoomService) CreateRoom(ctx context.Context, in CreateRoomInput) (domain.Room, error) {
	if in.HotelID == "" {
		return domain.Room{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.Room{}, domain.ErrRoomNameRequired
	}
	if in.PriceCents <= 0 {
		return domain.Room{}, domain.ErrInvalidPrice
	}

	room := domain.Room{
		ID:         newID(),
		HotelID:    in.HotelID,
		Name:       in.Name,
		PriceCents: in.PriceCents,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	if id == "" {
		return domain.Room{}, domain.ErrInvalidID
	}
	return s.repo.GetRoom(ctx, id)
}

func (s *RoomService) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	return s.repo.ListRooms(ctx, filter)
}

type UpdateRoomInput struct {
	Name       string
	PriceCents int64
}

func (s *RoomService) UpdateRoom(ctx context.Context, id string, in UpdateRoomInput) (domain.Room, error) {
	if id == "" {
		return domain.Room{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.Room{}, domain.ErrRoomNameRequired
	}
	if in.PriceCents <= 0 {
		return domain.Room{}, domain.ErrInvalidPrice
	}

	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	room.Name = in.Name
	room.PriceCents = in.PriceCents

	if err := s.repo.UpdateRoom(ctx, room); err != nil {
		return domain.Room{}, err
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteRoom(ctx, id)
}
