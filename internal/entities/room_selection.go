package entities

// RoomSelection is the fragment written when the user confirms a room.
// Totals and dates are frozen at selection time; re-selecting a room
// overwrites the whole fragment.
type RoomSelection struct {
	RoomName        string `json:"roomName"`
	RoomNumber      string `json:"roomNumber"`
	PricePerNight   int    `json:"pricePerNight"`
	Nights          int    `json:"nights"`
	Subtotal        int    `json:"price"`
	Tax             int    `json:"tax"`
	Total           int    `json:"total"`
	CheckInDate     string `json:"checkIn"`
	CheckOutDate    string `json:"checkOut"`
	DisplayCheckIn  string `json:"displayCheckIn"`
	DisplayCheckOut string `json:"displayCheckOut"`
	GuestsCount     int    `json:"guests"`
	RoomsCount      int    `json:"rooms"`
}
