package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "hotelbooking/internal/errors"
	"hotelbooking/internal/service"
)

type BookingHandler struct {
	Service service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking persists a booking in one transaction: guest and room are
// resolved (created with placeholders when unknown), the booking row is
// inserted and the room goes unavailable. A reused reference answers 409.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	booking, err := h.Service.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Booking saved successfully",
		"booking": booking,
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.Service.GetBookingByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Booking not found"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}
