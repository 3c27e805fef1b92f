package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/salomebobokhidze/HotelManagement/internal/app"
	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

// RoomAPI is the minimal interface needed by room endpoints.
type RoomAPI interface {
	CreateRoom(ctx context.Context, in app.CreateRoomInput) (domain.Room, error)
	GetRoom(ctx context.Context, id string) (domain.Room, error)
	ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, id string, in app.UpdateRoomInput) (domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

type createRoomRequest struct {
	HotelID    string `json:"hotel_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	PriceCents int64  `json:"price_cents" validate:"required,gt=0"`
}

type updateRoomRequest struct {
	Name       string `json:"name" validate:"required"`
	PriceCents int64  `json:"price_cents" validate:"required,gt=0"`
}

type roomResponse struct {
	ID         string    `json:"id"`
	HotelID    string    `json:"hotel_id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

func toRoomResponse(room domain.Room) roomResponse {
	return roomResponse{
		ID:         room.ID,
		HotelID:    room.HotelID,
		Name:       room.Name,
		PriceCents: room.PriceCents,
		CreatedAt:  room.CreatedAt,
	}
}

func HandleCreateRoom(svc RoomAPI, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRoomRequest
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

		room, err := svc.CreateRoom(r.Context(), app.CreateRoomInput{
			HotelID:    req.HotelID,
			Name:       req.Name,
			PriceCents: req.PriceCents,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(toRoomResponse(room))
	}
}

// HandleListRooms lists rooms, optionally filtered by hotel and price
// range via query parameters.
func HandleListRooms(svc RoomAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.RoomFilter{HotelID: r.URL.Query().Get("hotel_id")}

		var ok bool
		if filter.MinPriceCents, ok = parsePriceParam(w, r, "min_price_cents"); !ok {
			return
		}
		if filter.MaxPriceCents, ok = parsePriceParam(w, r, "max_price_cents"); !ok {
			return
		}

		rooms, err := svc.ListRooms(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]roomResponse, 0, len(rooms))
		for _, room := range rooms {
			resp = append(resp, toRoomResponse(room))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func HandleGetRoom(svc RoomAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, err := svc.GetRoom(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toRoomResponse(room))
	}
}

func HandleUpdateRoom(svc RoomAPI, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRoomRequest
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

		room, err := svc.UpdateRoom(r.Context(), chi.URLParam(r, "id"), app.UpdateRoomInput{
			Name:       req.Name,
			PriceCents: req.PriceCents,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toRoomResponse(room))
	}
}

func HandleDeleteRoom(svc RoomAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parsePriceParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, name+" must be a non-negative integer")
		return 0, false
	}
	return value, true
}
