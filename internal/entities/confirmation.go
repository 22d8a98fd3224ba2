package entities

// PaymentConfirmation is written only after the user submits the payment
// form; it must never exist before that.
type PaymentConfirmation struct {
	PaymentMethodLabel string `json:"paymentMethod"`
	PaymentDate        string `json:"paymentDate"`
	ConfirmationNumber string `json:"confirmationNumber"`
	PaymentAmount      int    `json:"paymentAmount"`
}

// BookingSummary is the merged view of the four wizard fragments, used for
// the cross-page summary panel.
type BookingSummary struct {
	Search       SearchCriteria      `json:"search"`
	Room         RoomSelection       `json:"room"`
	Personal     GuestDetails        `json:"personal"`
	Confirmation PaymentConfirmation `json:"confirmation"`
}
