package app

import (
	"context"

	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

type ReservationRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetRoomForUpdate(ctx context.Context, roomID string) (domain.Room, error)
	ListActiveByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, res domain.Reservation) error
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

// ReservationEvents receives lifecycle notifications after a booking
// commits. Implementations must not block the caller.
type ReservationEvents interface {
	ReservationCreated(ctx context.Context, res domain.Reservation)
	ReservationCancelled(ctx context.Context, res domain.Reservation)
}

// BookingService coordinates reservation creation. The room row lock taken
// inside the transaction is the per-room exclusivity scope: two concurrent
// bookings for the same room serialize on it, while bookings for different
// rooms proceed independently.
type BookingService struct {
	repo   ReservationRepository
	clock  clock.Clock
	events ReservationEvents
}

func NewBookingService(repo ReservationRepository, clk clock.Clock, opts ...BookingServiceOption) *BookingService {
	svc := &BookingService{
		repo:  repo,
		clock: clk,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type BookingServiceOption func(*BookingService)

// WithReservationEvents publishes lifecycle events after successful writes.
func WithReservationEvents(ev ReservationEvents) BookingServiceOption {
	return func(s *BookingService) {
		s.events = ev
	}
}

type BookStayInput struct {
	RoomID  string
	GuestID string
	Stay    domain.Stay
}

func (s *BookingService) Book(ctx context.Context, in BookStayInput) (domain.Reservation, error) {
	stay := domain.Stay{
		CheckIn:  domain.ToDate(in.Stay.CheckIn),
		CheckOut: domain.ToDate(in.Stay.CheckOut),
	}
	if err := stay.Validate(clock.Today(s.clock)); err != nil {
		return domain.Reservation{}, err
	}

	now := s.clock.Now()
	var result domain.Reservation

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		// Locks the room row until commit; concurrent bookings for this
		// room block here and re-check against the winner's write.
		room, err := s.repo.GetRoomForUpdate(txCtx, in.RoomID)
		if err != nil {
			return err
		}

		existing, err := s.repo.ListActiveByRoom(txCtx, in.RoomID)
		if err != nil {
			return err
		}
		for _, res := range existing {
			if stay.Overlaps(res.Stay()) {
				return &domain.StayConflictError{Conflicting: res}
			}
		}

		reservation := domain.Reservation{
			ID:        newID(),
			RoomID:    room.ID,
			HotelID:   room.HotelID,
			GuestID:   in.GuestID,
			CheckIn:   stay.CheckIn,
			CheckOut:  stay.CheckOut,
			Status:    domain.ReservationStatusActive,
			CreatedAt: now,
		}

		if err := s.repo.CreateReservation(txCtx, reservation); err != nil {
			return err
		}

		result = reservation
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	if s.events != nil {
		s.events.ReservationCreated(ctx, result)
	}
	return result, nil
}

// CheckAvailability is a read-only snapshot check. It is not a booking
// guarantee: Book repeats the same check under the room lock.
func (s *BookingService) CheckAvailability(ctx context.Context, roomID string, stay domain.Stay) (bool, *domain.Reservation, error) {
	stay = domain.Stay{
		CheckIn:  domain.ToDate(stay.CheckIn),
		CheckOut: domain.ToDate(stay.CheckOut),
	}
	if err := stay.Validate(clock.Today(s.clock)); err != nil {
		return false, nil, err
	}

	existing, err := s.repo.ListActiveByRoom(ctx, roomID)
	if err != nil {
		return false, nil, err
	}
	for _, res := range existing {
		if stay.Overlaps(res.Stay()) {
			conflict := res
			return false, &conflict, nil
		}
	}
	return true, nil, nil
}

func (s *BookingService) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	if id == "" {
		return domain.Reservation{}, domain.ErrInvalidID
	}
	return s.repo.GetReservation(ctx, id)
}

func (s *BookingService) ListByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error) {
	if roomID == "" {
		return nil, domain.ErrInvalidID
	}
	return s.repo.ListActiveByRoom(ctx, roomID)
}

// Cancel flips a reservation to cancelled on behalf of its guest, freeing
// the dates for rebooking. Managers may cancel any reservation.
func (s *BookingService) Cancel(ctx context.Context, id, guestID string, role domain.Role) (domain.Reservation, error) {
	var result domain.Reservation

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		res, err := s.repo.GetReservation(txCtx, id)
		if err != nil {
			return err
		}
		if role != domain.RoleManager && res.GuestID != guestID {
			return domain.ErrNotOwner
		}
		if res.Status == domain.ReservationStatusCancelled {
			return domain.ErrAlreadyCancelled
		}

		if err := s.repo.UpdateReservationStatus(txCtx, id, domain.ReservationStatusCancelled); err != nil {
			return err
		}
		res.Status = domain.ReservationStatusCancelled
		result = res
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	if s.events != nil {
		s.events.ReservationCancelled(ctx, result)
	}
	return result, nil
}
