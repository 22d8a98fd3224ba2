package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
	apperrors "hotelbooking/internal/errors"
	"hotelbooking/internal/pricing"
	"hotelbooking/internal/session"
	"hotelbooking/internal/utils"
)

// RoomChoice is what the room-selection step submits; everything else on the
// stored RoomSelection fragment is derived from the saved search.
type RoomChoice struct {
	RoomName      string `json:"roomName"`
	RoomNumber    string `json:"roomNumber"`
	PricePerNight int    `json:"pricePerNight"`
}

// PaymentSubmission is the simulated payment form. Only the masked label and
// the amount ever leave this process; card details are never stored.
type PaymentSubmission struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
}

// WizardService carries booking state across the wizard steps and reconciles
// it with the backend on payment.
type WizardService struct {
	store    session.Store
	bookings BookingService
	now      func() time.Time
}

func NewWizardService(store session.Store, bookings BookingService) *WizardService {
	return &WizardService{store: store, bookings: bookings, now: time.Now}
}

// StartSession issues the identifier the client carries through the flow.
func (s *WizardService) StartSession() string {
	return uuid.New().String()
}

// SaveSearch derives nights from the dates, applies the search-bar defaults
// and stores the searchData fragment.
func (s *WizardService) SaveSearch(ctx context.Context, sessionID string, criteria entities.SearchCriteria) (entities.SearchCriteria, error) {
	criteria.ApplyDefaults()
	criteria.Nights = pricing.ComputeNights(criteria.CheckInDate, criteria.CheckOutDate)
	if criteria.Nights > entities.MaxStayNights {
		return entities.SearchCriteria{}, apperrors.ErrStayTooLong
	}

	fragment, err := session.Encode(criteria)
	if err != nil {
		return entities.SearchCriteria{}, fmt.Errorf("save search: %w", err)
	}
	if !s.store.Save(ctx, sessionID, session.KeySearch, fragment) {
		return entities.SearchCriteria{}, fmt.Errorf("save search: session store refused the write")
	}
	return criteria, nil
}

// SelectRoom freezes a room choice against the saved search. Selection is
// refused when no dates have been picked; re-selection overwrites the
// previous choice wholesale.
func (s *WizardService) SelectRoom(ctx context.Context, sessionID string, choice RoomChoice) (entities.RoomSelection, error) {
	var criteria entities.SearchCriteria
	if err := session.Decode(s.store.Load(ctx, sessionID, session.KeySearch), &criteria); err != nil {
		return entities.RoomSelection{}, fmt.Errorf("select room: %w", err)
	}
	if criteria.Nights == 0 {
		return entities.RoomSelection{}, apperrors.ErrDatesNotSelected
	}

	totals := pricing.ComputeTotals(choice.PricePerNight, criteria.Nights, pricing.DefaultTaxRate)
	criteria.ApplyDefaults()
	selection := entities.RoomSelection{
		RoomName:        choice.RoomName,
		RoomNumber:      choice.RoomNumber,
		PricePerNight:   choice.PricePerNight,
		Nights:          criteria.Nights,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
		CheckInDate:     criteria.CheckInDate,
		CheckOutDate:    criteria.CheckOutDate,
		DisplayCheckIn:  pricing.FormatDisplayDate(criteria.CheckInDate),
		DisplayCheckOut: pricing.FormatDisplayDate(criteria.CheckOutDate),
		GuestsCount:     criteria.GuestsCount,
		RoomsCount:      criteria.RoomsCount,
	}

	fragment, err := session.Encode(selection)
	if err != nil {
		return entities.RoomSelection{}, fmt.Errorf("select room: %w", err)
	}
	if !s.store.Save(ctx, sessionID, session.KeyRoom, fragment) {
		return entities.RoomSelection{}, fmt.Errorf("select room: session store refused the write")
	}
	return selection, nil
}

// SaveGuestDetails validates the form, stores the fragment and submits the
// guest to the backend. Validation failures persist nothing; a backend
// failure surfaces to the caller and blocks the flow.
func (s *WizardService) SaveGuestDetails(ctx context.Context, sessionID string, details entities.GuestDetails) (*db.Guest, error) {
	if fields := details.Validate(); fields != nil {
		return nil, fields
	}

	fragment, err := session.Encode(details)
	if err != nil {
		return nil, fmt.Errorf("save guest details: %w", err)
	}
	if !s.store.Save(ctx, sessionID, session.KeyPersonal, fragment) {
		return nil, fmt.Errorf("save guest details: session store refused the write")
	}

	guest, err := s.bookings.SubmitGuest(ctx, details)
	if err != nil {
		return nil, fmt.Errorf("save guest details: %w", err)
	}
	return guest, nil
}

// CompletePayment builds the confirmation for a user-initiated submit,
// persists the booking atomically, and only then stores the
// bookingConfirmation fragment. Nothing is written when the booking fails.
func (s *WizardService) CompletePayment(ctx context.Context, sessionID string, payment PaymentSubmission) (entities.PaymentConfirmation, *db.Booking, error) {
	var room entities.RoomSelection
	if err := session.Decode(s.store.Load(ctx, sessionID, session.KeyRoom), &room); err != nil {
		return entities.PaymentConfirmation{}, nil, fmt.Errorf("complete payment: %w", err)
	}
	if room.RoomNumber == "" {
		return entities.PaymentConfirmation{}, nil, apperrors.ErrRoomNotSelected
	}

	var personal entities.GuestDetails
	if err := session.Decode(s.store.Load(ctx, sessionID, session.KeyPersonal), &personal); err != nil {
		return entities.PaymentConfirmation{}, nil, fmt.Errorf("complete payment: %w", err)
	}
	if personal.Email == "" {
		return entities.PaymentConfirmation{}, nil, apperrors.ErrGuestNotFound
	}

	var criteria entities.SearchCriteria
	if err := session.Decode(s.store.Load(ctx, sessionID, session.KeySearch), &criteria); err != nil {
		return entities.PaymentConfirmation{}, nil, fmt.Errorf("complete payment: %w", err)
	}
	criteria.ApplyDefaults()

	now := s.now()
	confirmation := entities.PaymentConfirmation{
		PaymentMethodLabel: utils.MaskCardLabel(paymentMethodOrDefault(payment.Method), payment.CardNumber),
		PaymentDate:        now.Format(pricing.DisplayDateLayout),
		ConfirmationNumber: utils.NewBookingReference(now),
		PaymentAmount:      room.Total,
	}

	booking, err := s.bookings.CreateBooking(ctx, CreateBookingRequest{
		BookingReference: confirmation.ConfirmationNumber,
		GuestEmail:       personal.Email,
		RoomNumber:       room.RoomNumber,
		PaymentAmount:    confirmation.PaymentAmount,
		PaymentDate:      confirmation.PaymentDate,
		PaymentMethod:    confirmation.PaymentMethodLabel,
		CheckInDate:      room.CheckInDate,
		CheckOutDate:     room.CheckOutDate,
		GuestFirstName:   personal.FirstName,
		GuestLastName:    personal.LastName,
		GuestPhone:       personal.Phone,
		Hotel:            criteria.Hotel,
		RoomName:         room.RoomName,
		Nights:           room.Nights,
	})
	if err != nil {
		return entities.PaymentConfirmation{}, nil, err
	}

	fragment, err := session.Encode(confirmation)
	if err != nil {
		// The booking is already durable; losing the fragment only degrades
		// the summary page.
		log.Printf("session %s: booking %s saved but confirmation fragment failed: %v",
			sessionID, booking.BookingReference, err)
		return confirmation, booking, nil
	}
	s.store.Save(ctx, sessionID, session.KeyConfirmation, fragment)
	return confirmation, booking, nil
}

// Summary merges the four fragments into the cross-page booking view.
func (s *WizardService) Summary(ctx context.Context, sessionID string) (entities.BookingSummary, error) {
	fragments := s.store.LoadAll(ctx, sessionID)

	var summary entities.BookingSummary
	if err := session.Decode(fragments.Search, &summary.Search); err != nil {
		return entities.BookingSummary{}, fmt.Errorf("summary: %w", err)
	}
	if err := session.Decode(fragments.Room, &summary.Room); err != nil {
		return entities.BookingSummary{}, fmt.Errorf("summary: %w", err)
	}
	if err := session.Decode(fragments.Personal, &summary.Personal); err != nil {
		return entities.BookingSummary{}, fmt.Errorf("summary: %w", err)
	}
	if err := session.Decode(fragments.Confirmation, &summary.Confirmation); err != nil {
		return entities.BookingSummary{}, fmt.Errorf("summary: %w", err)
	}
	return summary, nil
}

func paymentMethodOrDefault(method string) string {
	if method == "" {
		return "Credit Card"
	}
	return method
}
