package app

import (
	"context"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type HotelRepository interface {
	CreateHotel(ctx context.Context, hotel domain.Hotel) error
	GetHotel(ctx context.Context, id string) (domain.Hotel, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	UpdateHotel(ctx context.Context, hotel domain.Hotel) error
	DeleteHotel(ctx context.Context, id string) error
}

type HotelService struct {
	repo  HotelRepository
	clock clock.Clock
}

func NewHotelService(repo HotelRepository, clk clock.Clock) *HotelService {
	return &HotelService{
		repo:  repo,
		clock: clk,
	}
}

type CreateHotelInput struct {
	Name      string
	Rating    int
	Country   string
	City      string
	Address   string
	ManagerID string
}

func (s *HotelService) CreateHotel(ctx context.Context, in CreateHotelInput) (domain.Hotel, error) {
	if in.Name == "" {
		return domain.Hotel{}, domain.ErrHotelNameRequired
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Hotel{}, domain.ErrInvalidRating
	}

	hotel := domain.Hotel{
		ID:        newID(),
		Name:      in.Name,
		Rating:    in.Rating,
		Country:   in.Country,
		City:      in.City,
		Address:   in.Address,
		ManagerID: in.ManagerID,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateHotel(ctx, hotel); err != nil {
		return domain.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	if id == "" {
		return domain.Hotel{}, domain.ErrInvalidID
	}
	return s.repo.GetHotel(ctx, id)
}

func (s *HotelService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.repo.ListHotels(ctx)
}

type UpdateHotelInput struct {
	Name    string
	Rating  int
	Country string
	City    string
	Address string
}

func (s *HotelService) UpdateHotel(ctx context.Context, id string, in UpdateHotelInput) (domain.Hotel, error) {
	if id == "" {
		return domain.Hotel{}, domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.Hotel{}, domain.ErrHotelNameRequired
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Hotel{}, domain.ErrInvalidRating
	}

	hotel, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	hotel.Name = in.Name
	hotel.Rating = in.Rating
	hotel.Country = in.Country
	hotel.City = in.City
	hotel.Address = in.Address

	if err := s.repo.UpdateHotel(ctx, hotel); err != nil {
		return domain.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) DeleteHotel(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteHotel(ctx, id)
}
