package db

import "time"

// Room lifecycle states.
const (
	RoomStatusAvailable   = "available"
	RoomStatusUnavailable = "unavailable"
)

// Placeholder values used when the combined booking path has to create a
// guest or room that the earlier wizard steps never registered.
const (
	PlaceholderGuestName = "Guest"
	PlaceholderRoomType  = "Standard Room"
	PlaceholderRoomRate  = 20000
)

type Guest struct {
	ID        int       `json:"guest_id"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone_no"`
	CreatedAt time.Time `json:"created_at"`
}

type Room struct {
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Price      int    `json:"price"`
	Status     string `json:"status"`
}

type Booking struct {
	ID               int       `json:"id"`
	BookingReference string    `json:"booking_reference"`
	GuestID          int       `json:"guest_id"`
	RoomNumber       string    `json:"room_number"`
	PaymentAmount    int       `json:"payment_amount"`
	PaymentDate      string    `json:"payment_date"`
	PaymentMethod    string    `json:"payment_method"`
	CreatedAt        time.Time `json:"created_at"`
}

// RoomInfo is the raw capture of a room-details form submission.
type RoomInfo struct {
	ID         int    `json:"id"`
	RoomType   string `json:"room_type"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	NoOfGuests int    `json:"no_of_guests"`
	RoomRate   int    `json:"room_rate"`
}
