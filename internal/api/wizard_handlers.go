package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"hotelbooking/internal/entities"
	apperrors "hotelbooking/internal/errors"
	"hotelbooking/internal/service"
)

type WizardHandler struct {
	Service *service.WizardService
}

func NewWizardHandler(svc *service.WizardService) *WizardHandler {
	return &WizardHandler{Service: svc}
}

func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": h.Service.StartSession(),
	})
}

func (h *WizardHandler) SaveSearch(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var criteria entities.SearchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	saved, err := h.Service.SaveSearch(r.Context(), sessionID, criteria)
	if err != nil {
		if errors.Is(err, apperrors.ErrStayTooLong) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
				Message: "Stay cannot be longer than 10 nights",
				Code:    string(apperrors.KindValidation),
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// SelectRoom is refused with a 409 until the session has dates on file.
func (h *WizardHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var choice service.RoomChoice
	if err := json.NewDecoder(r.Body).Decode(&choice); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	selection, err := h.Service.SelectRoom(r.Context(), sessionID, choice)
	if err != nil {
		if errors.Is(err, apperrors.ErrDatesNotSelected) {
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Message: "Please select your dates before choosing a room",
			})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, selection)
}

func (h *WizardHandler) SaveGuestDetails(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var details entities.GuestDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	guest, err := h.Service.SaveGuestDetails(r.Context(), sessionID, details)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Guest saved successfully",
		"guest":   guest,
	})
}

func (h *WizardHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var payment service.PaymentSubmission
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	confirmation, booking, err := h.Service.CompletePayment(r.Context(), sessionID, payment)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRoomNotSelected):
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Message: "Please select a room before paying",
			})
		case errors.Is(err, apperrors.ErrGuestNotFound):
			writeJSON(w, http.StatusConflict, ErrorResponse{
				Message: "Please fill in your details before paying",
			})
		default:
			writeError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Booking saved successfully",
		"confirmation": confirmation,
		"booking":      booking,
	})
}

func (h *WizardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	summary, err := h.Service.Summary(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
