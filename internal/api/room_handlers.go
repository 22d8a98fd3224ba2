package api

import (
	"encoding/json"
	"net/http"

	"hotelbooking/internal/db"
	"hotelbooking/internal/service"
)

type RoomHandler struct {
	Service service.BookingService
}

func NewRoomHandler(svc service.BookingService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

// SubmitRoomInfo stores a raw room-details form submission.
func (h *RoomHandler) SubmitRoomInfo(w http.ResponseWriter, r *http.Request) {
	var req SubmitRoomInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.Service.SaveRoomInfo(r.Context(), &db.RoomInfo{
		RoomType:   req.RoomType,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		NoOfGuests: req.NoOfGuests,
		RoomRate:   req.RoomRate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Room info saved successfully",
		"id":      id,
	})
}

// ListRooms returns the room inventory, optionally filtered by status.
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.ListRooms(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}
