package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hotelbooking/internal/entities"
	apperrors "hotelbooking/internal/errors"
)

// SubmitGuest
type SubmitGuestRequest struct {
	FirstName  string `json:"fname"`
	LastName   string `json:"lname"`
	Email      string `json:"email"`
	Phone      string `json:"phone_no"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SubmitRoomInfo
type SubmitRoomInfoRequest struct {
	RoomType   string `json:"room_type"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	NoOfGuests int    `json:"no_of_guests"`
	RoomRate   int    `json:"room_rate"`
}

// ErrorResponse is the failure envelope every endpoint answers with.
type ErrorResponse struct {
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError unwraps the service error into the envelope: field validation
// maps to 422 with a fields map, kinded errors keep their status and code,
// anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var fields entities.FieldErrors
	if errors.As(err, &fields) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Validation failed",
			Code:    string(apperrors.KindValidation),
			Fields:  fields,
		})
		return
	}

	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		resp := ErrorResponse{
			Message: httpErr.Message,
			Code:    string(httpErr.Kind),
		}
		if httpErr.Err != nil {
			resp.Error = httpErr.Err.Error()
		}
		writeJSON(w, httpErr.Code, resp)
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
		Error:   err.Error(),
		Code:    string(apperrors.KindGeneric),
	})
}
