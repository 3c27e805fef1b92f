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

// HotelAPI is the minimal interface needed by hotel endpoints.
type HotelAPI interface {
	CreateHotel(ctx context.Context, in app.CreateHotelInput) (domain.Hotel, error)
	GetHotel(ctx context.Context, id string) (domain.Hotel, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	UpdateHotel(ctx context.Context, id string, in app.UpdateHotelInput) (domain.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

type hotelRequest struct {
	Name    string `json:"name" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Country string `json:"country"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type hotelResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	ManagerID string    `json:"manager_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toHotelResponse(hotel domain.Hotel) hotelResponse {
	return hotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Rating:    hotel.Rating,
		Country:   hotel.Country,
		City:      hotel.City,
		Address:   hotel.Address,
		ManagerID: hotel.ManagerID,
		CreatedAt: hotel.CreatedAt,
	}
}

// HandleCreateHotel creates a hotel owned by the authenticated manager.
func HandleCreateHotel(svc HotelAPI, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hotelRequest
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

		hotel, err := svc.CreateHotel(r.Context(), app.CreateHotelInput{
			Name:      req.Name,
			Rating:    req.Rating,
			Country:   req.Country,
			City:      req.City,
			Address:   req.Address,
			ManagerID: userIDFromContext(r.Context()),
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(toHotelResponse(hotel))
	}
}

func HandleListHotels(svc HotelAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hotels, err := svc.ListHotels(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]hotelResponse, 0, len(hotels))
		for _, hotel := range hotels {
			resp = append(resp, toHotelResponse(hotel))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func HandleGetHotel(svc HotelAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hotel, err := svc.GetHotel(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toHotelResponse(hotel))
	}
}

func HandleUpdateHotel(svc HotelAPI, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req hotelRequest
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

		hotel, err := svc.UpdateHotel(r.Context(), chi.URLParam(r, "id"), app.UpdateHotelInput{
			Name:    req.Name,
			Rating:  req.Rating,
			Country: req.Country,
			City:    req.City,
			Address: req.Address,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toHotelResponse(hotel))
	}
}

func HandleDeleteHotel(svc HotelAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteHotel(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
