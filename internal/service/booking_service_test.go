package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
	apperrors "hotelbooking/internal/errors"
	"hotelbooking/internal/pricing"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/service"
	"hotelbooking/internal/service/mocks"
)

func newBookingService() (service.BookingService, *mocks.MockGuestStore, *mocks.MockRoomStore, *mocks.MockBookingStore) {
	guests := new(mocks.MockGuestStore)
	rooms := new(mocks.MockRoomStore)
	bookings := new(mocks.MockBookingStore)
	svc := service.NewBookingService(guests, rooms, bookings, nil)
	return svc, guests, rooms, bookings
}

func TestSubmitGuestRejectsInvalidDetails(t *testing.T) {
	svc, guests, _, _ := newBookingService()

	_, err := svc.SubmitGuest(context.Background(), entities.GuestDetails{
		FirstName: "John1",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "9123456789",
	})
	require.Error(t, err)

	var fields entities.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "firstName")
	guests.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubmitGuestUpserts(t *testing.T) {
	svc, guests, _, _ := newBookingService()

	saved := &db.Guest{ID: 7, FirstName: "John", LastName: "Doe", Email: "john@example.com", Phone: "9123456789"}
	guests.On("Upsert", mock.Anything, mock.MatchedBy(func(g *db.Guest) bool {
		return g.Email == "john@example.com" && g.FirstName == "John"
	})).Return(saved, nil)

	guest, err := svc.SubmitGuest(context.Background(), entities.GuestDetails{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "9123456789",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, guest.ID)
	guests.AssertExpectations(t)
}

func TestCreateBookingRequiresReference(t *testing.T) {
	svc, _, _, bookings := newBookingService()

	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		GuestEmail: "john@example.com",
		RoomNumber: "204",
	})
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, apperrors.KindValidation, httpErr.Kind)
	bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingAppliesDefaults(t *testing.T) {
	svc, _, _, bookings := newBookingService()

	var captured repository.CreateBookingParams
	bookings.On("CreateBooking", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(repository.CreateBookingParams)
		}).
		Return(&db.Booking{ID: 1, BookingReference: "TAJ-260831ABCD"}, nil)

	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		BookingReference: "TAJ-260831ABCD",
		GuestEmail:       "john@example.com",
		RoomNumber:       "204",
		PaymentAmount:    70800,
	})
	require.NoError(t, err)
	assert.Equal(t, "Not specified", captured.PaymentMethod)
	assert.Equal(t, time.Now().Format(pricing.DisplayDateLayout), captured.PaymentDate)
}

func TestCreateBookingDoesNotRetryDuplicates(t *testing.T) {
	svc, _, _, bookings := newBookingService()

	dup := &apperrors.HTTPError{
		Code:    409,
		Kind:    apperrors.KindDuplicate,
		Message: apperrors.MessageFor(apperrors.KindDuplicate),
		Err:     apperrors.ErrDuplicateReference,
	}
	bookings.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, dup)

	_, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		BookingReference: "TAJ-260831ABCD",
		GuestEmail:       "john@example.com",
		RoomNumber:       "204",
	})
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, apperrors.KindDuplicate, httpErr.Kind)
	bookings.AssertNumberOfCalls(t, "CreateBooking", 1)
}

func TestCreateBookingRetriesTransientFailures(t *testing.T) {
	svc, _, _, bookings := newBookingService()

	transient := &apperrors.HTTPError{
		Code:    500,
		Kind:    apperrors.KindBookingInsert,
		Message: apperrors.MessageFor(apperrors.KindBookingInsert),
		Err:     errors.New("connection reset"),
	}
	bookings.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, transient).Once()
	bookings.On("CreateBooking", mock.Anything, mock.Anything).
		Return(&db.Booking{ID: 1, BookingReference: "TAJ-260831ABCD"}, nil).Once()

	booking, err := svc.CreateBooking(context.Background(), service.CreateBookingRequest{
		BookingReference: "TAJ-260831ABCD",
		GuestEmail:       "john@example.com",
		RoomNumber:       "204",
	})
	require.NoError(t, err)
	assert.Equal(t, "TAJ-260831ABCD", booking.BookingReference)
	bookings.AssertNumberOfCalls(t, "CreateBooking", 2)
}

func TestGetBookingByReference(t *testing.T) {
	svc, _, _, bookings := newBookingService()

	bookings.On("GetByReference", mock.Anything, "TAJ-260831ABCD").
		Return(&db.Booking{ID: 1, BookingReference: "TAJ-260831ABCD"}, nil)

	booking, err := svc.GetBookingByReference(context.Background(), "TAJ-260831ABCD")
	require.NoError(t, err)
	assert.Equal(t, 1, booking.ID)
}
