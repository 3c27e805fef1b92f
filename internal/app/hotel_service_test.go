package app

import (
	"context"
	"testing"
	"time"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

func TestHotelService_CreateHotel(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("creates hotel", func(t *testing.T) {
		repo := newFakeHotelRepo(nil)
		svc := NewHotelService(repo, clock.NewFixed(now))

		hotel, err := svc.CreateHotel(context.Background(), CreateHotelInput{
			Name: "Old Town Inn", Rating: 4, Country: "Georgia", City: "Tbilisi", Address: "12 Rustaveli Ave",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if hotel.ID == "" {
			t.Fatalf("expected hotel ID to be set")
		}
		if len(repo.hotels) != 1 {
			t.Fatalf("expected 1 hotel, got %d", len(repo.hotels))
		}
	})

	t.Run("name required", func(t *testing.T) {
		svc := NewHotelService(newFakeHotelRepo(nil), clock.NewFixed(now))
		if _, err := svc.CreateHotel(context.Background(), CreateHotelInput{Rating: 3}); err != domain.ErrHotelNameRequired {
			t.Fatalf("expected ErrHotelNameRequired, got %v", err)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := NewHotelService(newFakeHotelRepo(nil), clock.NewFixed(now))
		if _, err := svc.CreateHotel(context.Background(), CreateHotelInput{Name: "X", Rating: 6}); err != domain.ErrInvalidRating {
			t.Fatalf("expected ErrInvalidRating, got %v", err)
		}
	})
}

func TestHotelService_UpdateHotel(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	seed := domain.Hotel{ID: "hotel-1", Name: "Old Town Inn", Rating: 4, City: "Tbilisi"}

	repo := newFakeHotelRepo([]domain.Hotel{seed})
	svc := NewHotelService(repo, clock.NewFixed(now))

	updated, err := svc.UpdateHotel(context.Background(), "hotel-1", UpdateHotelInput{
		Name: "Old Town Boutique", Rating: 5, Country: "Georgia", City: "Tbilisi", Address: "12 Rustaveli Ave",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Name != "Old Town Boutique" || updated.Rating != 5 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateHotel(context.Background(), "missing", UpdateHotelInput{Name: "X", Rating: 3}); err != domain.ErrHotelNotFound {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

type fakeHotelRepo struct {
	hotels map[string]domain.Hotel
}

func newFakeHotelRepo(hotels []domain.Hotel) *fakeHotelRepo {
	m := make(map[string]domain.Hotel)
	for _, h := range hotels {
		m[h.ID] = h
	}
	return &fakeHotelRepo{hotels: m}
}

func (f *fakeHotelRepo) CreateHotel(_ context.Context, hotel domain.Hotel) error {
	f.hotels[hotel.ID] = hotel
	return nil
}

func (f *fakeHotelRepo) GetHotel(_ context.Context, id string) (domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return h, nil
}

func (f *fakeHotelRepo) ListHotels(_ context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0, len(f.hotels))
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHotelRepo) UpdateHotel(_ context.Context, hotel domain.Hotel) error {
	if _, ok := f.hotels[hotel.ID]; !ok {
		return domain.ErrHotelNotFound
	}
	f.hotels[hotel.ID] = hotel
	return nil
}

func (f *fakeHotelRepo) DeleteHotel(_ context.Context, id string) error {
	if _, ok := f.hotels[id]; !ok {
		return domain.ErrHotelNotFound
	}
	delete(f.hotels, id)
	return nil
}
