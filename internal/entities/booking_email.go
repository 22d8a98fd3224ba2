package entities

// BookingEmailData feeds the confirmation email template.
type BookingEmailData struct {
	GuestName          string
	BookingReference   string
	Hotel              string
	RoomName           string
	CheckInFormatted   string
	CheckOutFormatted  string
	Nights             int
	PaymentAmount      int
	PaymentMethodLabel string
	CurrentYear        int
}
