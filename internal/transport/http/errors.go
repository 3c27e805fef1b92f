package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/salomebobokhidze/HotelManagement/internal/domain"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeValidationFailed    = "validation_failed"
	codePastCheckIn         = "past_check_in"
	codeInvalidStayRange    = "invalid_stay_range"
	codeInvalidID           = "invalid_id"
	codeHotelNameRequired   = "hotel_name_required"
	codeRoomNameRequired    = "room_name_required"
	codeInvalidRating       = "invalid_rating"
	codeInvalidPrice        = "invalid_price"
	codeUnauthorized        = "unauthorized"
	codeForbidden           = "forbidden"
	codeHotelNotFound       = "hotel_not_found"
	codeRoomNotFound        = "room_not_found"
	codeReservationNotFound = "reservation_not_found"
	codeUserNotFound        = "user_not_found"
	codeRoomUnavailable     = "room_unavailable"
	codeEmailTaken          = "email_taken"
	codeAlreadyCancelled    = "already_cancelled"
	codeInternalError       = "internal_error"
)

type errorResponse struct {
	Error                    string `json:"error"`
	Code                     string `json:"code"`
	ConflictingReservationID string `json:"conflicting_reservation_id,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeErrorResponse(w, status, errorResponse{Error: msg, Code: code})
}

func writeErrorResponse(w http.ResponseWriter, status int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(resp)
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps service errors onto the JSON error envelope. A
// stay conflict additionally carries the conflicting reservation's id so
// clients can surface the blocking booking.
func writeServiceError(w http.ResponseWriter, err error) {
	var conflict *domain.StayConflictError
	if errors.As(err, &conflict) {
		writeErrorResponse(w, http.StatusConflict, errorResponse{
			Error:                    err.Error(),
			Code:                     codeRoomUnavailable,
			ConflictingReservationID: conflict.Conflicting.ID,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrPastCheckIn):
		writeError(w, http.StatusBadRequest, codePastCheckIn, err.Error())
	case errors.Is(err, domain.ErrInvalidStayRange):
		writeError(w, http.StatusBadRequest, codeInvalidStayRange, err.Error())
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, domain.ErrHotelNameRequired):
		writeError(w, http.StatusBadRequest, codeHotelNameRequired, err.Error())
	case errors.Is(err, domain.ErrRoomNameRequired):
		writeError(w, http.StatusBadRequest, codeRoomNameRequired, err.Error())
	case errors.Is(err, domain.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, codeInvalidRating, err.Error())
	case errors.Is(err, domain.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidRefreshToken):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		writeError(w, http.StatusForbidden, codeForbidden, err.Error())
	case errors.Is(err, domain.ErrHotelNotFound):
		writeError(w, http.StatusNotFound, codeHotelNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomNotFound):
		writeError(w, http.StatusNotFound, codeRoomNotFound, err.Error())
	case errors.Is(err, domain.ErrReservationNotFound):
		writeError(w, http.StatusNotFound, codeReservationNotFound, err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable):
		writeError(w, http.StatusConflict, codeRoomUnavailable, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, codeEmailTaken, err.Error())
	case errors.Is(err, domain.ErrAlreadyCancelled):
		writeError(w, http.StatusConflict, codeAlreadyCancelled, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
