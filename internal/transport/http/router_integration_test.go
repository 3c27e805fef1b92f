package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/salomebobokhidze/HotelManagement/internal/app"
	"github.com/salomebobokhidze/HotelManagement/internal/clock"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
	"github.com/salomebobokhidze/HotelManagement/internal/storage/postgres"
	"github.com/salomebobokhidze/HotelManagement/internal/testutil"
)

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]string)}
}

func (s *memoryTokenStore) Save(_ context.Context, token, userID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *memoryTokenStore) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInvalidRefreshToken
	}
	delete(s.tokens, token)
	return userID, nil
}

func (s *memoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func TestBookingFlow_HTTPIntegration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()
	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(now)

	authSvc := app.NewAuthService(postgres.NewUserRepository(pool), newMemoryTokenStore(), clk, "integration-secret")
	bookingSvc := app.NewBookingService(postgres.NewReservationRepository(pool), clk)
	hotelSvc := app.NewHotelService(postgres.NewHotelRepository(pool), clk)
	roomSvc := app.NewRoomService(postgres.NewRoomRepository(pool), clk)

	router := NewRouter(RouterDeps{
		Booking:  bookingSvc,
		Hotels:   hotelSvc,
		Rooms:    roomSvc,
		Auth:     authSvc,
		Verifier: authSvc,
	})

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		var reader *bytes.Buffer
		if body == "" {
			reader = bytes.NewBuffer(nil)
		} else {
			reader = bytes.NewBufferString(body)
		}
		req := httptest.NewRequest(method, path, reader)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, out any) {
		t.Helper()
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}

	rec := do(http.MethodPost, "/auth/register", "",
		`{"email":"manager@example.com","password":"manager-pass","first_name":"Tamar","last_name":"B","personal_number":"01234567890","role":"manager"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register manager: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var manager authResponse
	decode(rec, &manager)

	rec = do(http.MethodPost, "/auth/register", "",
		`{"email":"guest@example.com","password":"guest-pass1","first_name":"Nino","last_name":"K","personal_number":"09876543210"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register guest: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var guest authResponse
	decode(rec, &guest)

	rec = do(http.MethodPost, "/hotels", manager.AccessToken,
		`{"name":"Old Town Inn","rating":4,"country":"Georgia","city":"Tbilisi","address":"1 Freedom Sq"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create hotel: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var hotel hotelResponse
	decode(rec, &hotel)

	rec = do(http.MethodPost, "/rooms", guest.AccessToken,
		`{"hotel_id":"`+hotel.ID+`","name":"Room 101","price_cents":12000}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("guest creating room: expected 403, got %d", rec.Code)
	}

	rec = do(http.MethodPost, "/rooms", manager.AccessToken,
		`{"hotel_id":"`+hotel.ID+`","name":"Room 101","price_cents":12000}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create room: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var room roomResponse
	decode(rec, &room)

	rec = do(http.MethodGet, "/rooms/"+room.ID+"/availability?check_in=2026-09-10&check_out=2026-09-12", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("availability: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var avail availabilityResponse
	decode(rec, &avail)
	if !avail.Available {
		t.Fatalf("expected room to be available before booking")
	}

	rec = do(http.MethodPost, "/reservations", guest.AccessToken,
		`{"room_id":"`+room.ID+`","check_in":"2026-09-10","check_out":"2026-09-12"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("book: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var booked reservationResponse
	decode(rec, &booked)

	rec = do(http.MethodPost, "/reservations", guest.AccessToken,
		`{"room_id":"`+room.ID+`","check_in":"2026-09-11","check_out":"2026-09-13"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("overlap book: expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
	var conflict errorResponse
	decode(rec, &conflict)
	if conflict.ConflictingReservationID != booked.ID {
		t.Fatalf("expected conflicting id %s, got %s", booked.ID, conflict.ConflictingReservationID)
	}

	rec = do(http.MethodPost, "/reservations", guest.AccessToken,
		`{"room_id":"`+room.ID+`","check_in":"2026-09-12","check_out":"2026-09-14"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("back-to-back book: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodDelete, "/reservations/"+booked.ID, guest.AccessToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("cancel: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = do(http.MethodPost, "/reservations", guest.AccessToken,
		`{"room_id":"`+room.ID+`","check_in":"2026-09-10","check_out":"2026-09-12"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("rebook after cancel: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	var activeCount int
	if err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE room_id = $1 AND status = 'active'`, room.ID,
	).Scan(&activeCount); err != nil {
		t.Fatalf("query count: %v", err)
	}
	if activeCount != 2 {
		t.Fatalf("expected 2 active reservations, got %d", activeCount)
	}
}
