package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/salomebobokhidze/HotelManagement/internal/app"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

const dateLayout = "2006-01-02"

// BookingAPI is the minimal interface needed by reservation endpoints.
type BookingAPI interface {
	Book(ctx context.Context, in app.BookStayInput) (domain.Reservation, error)
	GetReservation(ctx context.Context, id string) (domain.Reservation, error)
	ListByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error)
	Cancel(ctx context.Context, id, guestID string, role domain.Role) (domain.Reservation, error)
	CheckAvailability(ctx context.Context, roomID string, stay domain.Stay) (bool, *domain.Reservation, error)
}

type createReservationRequest struct {
	RoomID   string `json:"room_id" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

type reservationResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	HotelID   string    `json:"hotel_id"`
	GuestID   string    `json:"guest_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toReservationResponse(res domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:        res.ID,
		RoomID:    res.RoomID,
		HotelID:   res.HotelID,
		GuestID:   res.GuestID,
		CheckIn:   res.CheckIn.Format(dateLayout),
		CheckOut:  res.CheckOut.Format(dateLayout),
		Status:    string(res.Status),
		CreatedAt: res.CreatedAt,
	}
}

// HandleCreateReservation books a stay for the authenticated guest.
func HandleCreateReservation(svc BookingAPI, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReservationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
			return
		}

		stay, ok := parseStay(w, req.CheckIn, req.CheckOut)
		if !ok {
			return
		}

		res, err := svc.Book(r.Context(), app.BookStayInput{
			RoomID:  req.RoomID,
			GuestID: userIDFromContext(r.Context()),
			Stay:    stay,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(toReservationResponse(res))
	}
}

// HandleGetReservation looks up one reservation by id.
func HandleGetReservation(svc BookingAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.GetReservation(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toReservationResponse(res))
	}
}

// HandleCancelReservation cancels a reservation on behalf of its guest.
// Managers may cancel any reservation.
func HandleCancelReservation(svc BookingAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res, err := svc.Cancel(ctx, chi.URLParam(r, "id"), userIDFromContext(ctx), roleFromContext(ctx))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toReservationResponse(res))
	}
}

// HandleListRoomReservations lists a room's active reservations.
func HandleListRoomReservations(svc BookingAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := svc.ListByRoom(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]reservationResponse, 0, len(reservations))
		for _, res := range reservations {
			resp = append(resp, toReservationResponse(res))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type availabilityResponse struct {
	Available                bool   `json:"available"`
	ConflictingReservationID string `json:"conflicting_reservation_id,omitempty"`
}

// HandleRoomAvailability probes whether a room is free for a stay. The
// answer is a snapshot; booking re-checks under the room lock.
func HandleRoomAvailability(svc BookingAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stay, ok := parseStay(w, r.URL.Query().Get("check_in"), r.URL.Query().Get("check_out"))
		if !ok {
			return
		}

		available, conflict, err := svc.CheckAvailability(r.Context(), chi.URLParam(r, "id"), stay)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := availabilityResponse{Available: available}
		if conflict != nil {
			resp.ConflictingReservationID = conflict.ID
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func parseStay(w http.ResponseWriter, checkIn, checkOut string) (domain.Stay, bool) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "check_in must be a YYYY-MM-DD date")
		return domain.Stay{}, false
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "check_out must be a YYYY-MM-DD date")
		return domain.Stay{}, false
	}
	return domain.Stay{CheckIn: in, CheckOut: out}, true
}
