package api

import (
	"encoding/json"
	"net/http"

	"hotelbooking/internal/entities"
	"hotelbooking/internal/service"
)

type GuestHandler struct {
	Service service.BookingService
}

func NewGuestHandler(svc service.BookingService) *GuestHandler {
	return &GuestHandler{Service: svc}
}

// SubmitGuest validates the personal-details form and upserts the guest.
// A repeat submission with a known email returns the existing record.
func (h *GuestHandler) SubmitGuest(w http.ResponseWriter, r *http.Request) {
	var req SubmitGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	details := entities.GuestDetails{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}

	guest, err := h.Service.SubmitGuest(r.Context(), details)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Guest saved successfully",
		"guest":   guest,
	})
}
