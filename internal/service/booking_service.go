package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
	apperrors "hotelbooking/internal/errors"
	"hotelbooking/internal/pricing"
	"hotelbooking/internal/repository"
)

// Storage ports, satisfied by the repositories and by test doubles.
type GuestStore interface {
	Upsert(ctx context.Context, g *db.Guest) (*db.Guest, error)
	GetByEmail(ctx context.Context, email string) (*db.Guest, error)
}

type RoomStore interface {
	ListRooms(ctx context.Context, status string) ([]db.Room, error)
	SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error)
}

type BookingStore interface {
	CreateBooking(ctx context.Context, p repository.CreateBookingParams) (*db.Booking, error)
	GetByReference(ctx context.Context, reference string) (*db.Booking, error)
}

// BookingNotifier delivers post-booking confirmations.
type BookingNotifier interface {
	SendBookingEmail(guest db.Guest, booking db.Booking, data entities.BookingEmailData)
	SendBookingSMS(guest db.Guest, booking db.Booking)
}

// BookingService is the server-side contract for guest submission and
// booking creation.
type BookingService interface {
	SubmitGuest(ctx context.Context, g entities.GuestDetails) (*db.Guest, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*db.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*db.Booking, error)
	SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error)
	ListRooms(ctx context.Context, status string) ([]db.Room, error)
}

type CreateBookingRequest struct {
	BookingReference string `json:"bookingReference"`
	GuestEmail       string `json:"guestEmail"`
	RoomNumber       string `json:"roomNumber"`
	PaymentAmount    int    `json:"paymentAmount"`
	PaymentDate      string `json:"paymentDate"`
	PaymentMethod    string `json:"paymentMethod"`
	CheckInDate      string `json:"checkIn,omitempty"`
	CheckOutDate     string `json:"checkOut,omitempty"`
	GuestFirstName   string `json:"-"`
	GuestLastName    string `json:"-"`
	GuestPhone       string `json:"-"`
	Hotel            string `json:"-"`
	RoomName         string `json:"-"`
	Nights           int    `json:"-"`
}

type bookingService struct {
	guests   GuestStore
	rooms    RoomStore
	bookings BookingStore
	notifier BookingNotifier
}

func NewBookingService(guests GuestStore, rooms RoomStore, bookings BookingStore, notifier BookingNotifier) BookingService {
	return &bookingService{
		guests:   guests,
		rooms:    rooms,
		bookings: bookings,
		notifier: notifier,
	}
}

// SubmitGuest resolves or creates a guest by email. Submitting the same
// email twice reuses the existing row.
func (s *bookingService) SubmitGuest(ctx context.Context, g entities.GuestDetails) (*db.Guest, error) {
	if fields := g.Validate(); fields != nil {
		return nil, fields
	}
	guest, err := s.guests.Upsert(ctx, &db.Guest{
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Email:     g.Email,
		Phone:     g.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("submit guest: %w", err)
	}
	return guest, nil
}

// CreateBooking persists the booking atomically, retrying transient storage
// errors with exponential backoff. Duplicate references and constraint
// violations are returned immediately.
func (s *bookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*db.Booking, error) {
	if req.BookingReference == "" {
		return nil, apperrors.NewHTTPError(400, apperrors.KindValidation, "Missing booking reference")
	}
	if req.PaymentDate == "" {
		req.PaymentDate = time.Now().Format(pricing.DisplayDateLayout)
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "Not specified"
	}

	params := repository.CreateBookingParams{
		BookingReference: req.BookingReference,
		GuestEmail:       req.GuestEmail,
		GuestFirstName:   req.GuestFirstName,
		GuestLastName:    req.GuestLastName,
		GuestPhone:       req.GuestPhone,
		RoomNumber:       req.RoomNumber,
		PaymentAmount:    req.PaymentAmount,
		PaymentDate:      req.PaymentDate,
		PaymentMethod:    req.PaymentMethod,
		CheckInDate:      req.CheckInDate,
		CheckOutDate:     req.CheckOutDate,
	}

	var booking *db.Booking
	operation := func() error {
		var err error
		booking, err = s.bookings.CreateBooking(ctx, params)
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	log.Printf("Booking %s created for %s (room %s, amount %d)",
		booking.BookingReference, req.GuestEmail, booking.RoomNumber, booking.PaymentAmount)

	if s.notifier != nil {
		s.notifyAsync(req, *booking)
	}
	return booking, nil
}

func (s *bookingService) notifyAsync(req CreateBookingRequest, booking db.Booking) {
	guest, err := s.guests.GetByEmail(context.Background(), req.GuestEmail)
	if err != nil {
		log.Printf("Booking %s saved, but guest lookup for notification failed: %v", booking.BookingReference, err)
		return
	}
	hotel := req.Hotel
	if hotel == "" {
		hotel = entities.DefaultHotel
	}
	data := entities.BookingEmailData{
		GuestName:          guest.FirstName + " " + guest.LastName,
		BookingReference:   booking.BookingReference,
		Hotel:              hotel,
		RoomName:           req.RoomName,
		CheckInFormatted:   pricing.FormatDisplayDate(req.CheckInDate),
		CheckOutFormatted:  pricing.FormatDisplayDate(req.CheckOutDate),
		Nights:             req.Nights,
		PaymentAmount:      booking.PaymentAmount,
		PaymentMethodLabel: booking.PaymentMethod,
		CurrentYear:        time.Now().Year(),
	}
	go s.notifier.SendBookingEmail(*guest, booking, data)
	go s.notifier.SendBookingSMS(*guest, booking)
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*db.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

func (s *bookingService) SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error) {
	return s.rooms.SaveRoomInfo(ctx, info)
}

func (s *bookingService) ListRooms(ctx context.Context, status string) ([]db.Room, error) {
	return s.rooms.ListRooms(ctx, status)
}

// isTransient reports whether a storage error is worth retrying. Constraint
// violations and schema problems never heal on retry.
func isTransient(err error) bool {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Kind == apperrors.KindGeneric ||
			httpErr.Kind == apperrors.KindGuestLookup ||
			httpErr.Kind == apperrors.KindRoomLookup ||
			httpErr.Kind == apperrors.KindBookingInsert
	}
	return true
}
