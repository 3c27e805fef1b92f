package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// RouterDeps holds the services the router exposes.
type RouterDeps struct {
	Booking  BookingAPI
	Hotels   HotelAPI
	Rooms    RoomAPI
	Auth     AuthAPI
	Verifier TokenVerifier
}

// NewRouter wires every endpoint. Reads on hotels, rooms and availability
// are public; reservations and all writes require a bearer token, and
// hotel/room writes additionally require the manager role.
func NewRouter(deps RouterDeps) *chi.Mux {
	validate := validator.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HealthHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", HandleRegister(deps.Auth, validate))
		r.Post("/login", HandleLogin(deps.Auth, validate))
		r.Post("/refresh", HandleRefresh(deps.Auth, validate))
		r.Post("/logout", HandleLogout(deps.Auth, validate))
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(deps.Verifier))
			r.Get("/me", HandleMe(deps.Auth))
		})
	})

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", HandleListHotels(deps.Hotels))
		r.Get("/{id}", HandleGetHotel(deps.Hotels))
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(deps.Verifier), RequireManager)
			r.Post("/", HandleCreateHotel(deps.Hotels, validate))
			r.Put("/{id}", HandleUpdateHotel(deps.Hotels, validate))
			r.Delete("/{id}", HandleDeleteHotel(deps.Hotels))
		})
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", HandleListRooms(deps.Rooms))
		r.Get("/{id}", HandleGetRoom(deps.Rooms))
		r.Get("/{id}/availability", HandleRoomAvailability(deps.Booking))
		r.Get("/{id}/reservations", HandleListRoomReservations(deps.Booking))
		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(deps.Verifier), RequireManager)
			r.Post("/", HandleCreateRoom(deps.Rooms, validate))
			r.Put("/{id}", HandleUpdateRoom(deps.Rooms, validate))
			r.Delete("/{id}", HandleDeleteRoom(deps.Rooms))
		})
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Use(RequireAuth(deps.Verifier))
		r.Post("/", HandleCreateReservation(deps.Booking, validate))
		r.Get("/{id}", HandleGetReservation(deps.Booking))
		r.Delete("/{id}", HandleCancelReservation(deps.Booking))
	})

	return r
}
