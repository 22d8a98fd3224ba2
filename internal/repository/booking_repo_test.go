package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/db"
	apperrors "hotelbooking/internal/errors"
)

func bookingParams() CreateBookingParams {
	return CreateBookingParams{
		BookingReference: "TAJ-260831ABCD",
		GuestEmail:       "john@example.com",
		GuestFirstName:   "John",
		GuestLastName:    "Doe",
		GuestPhone:       "9123456789",
		RoomNumber:       "204",
		PaymentAmount:    70800,
		PaymentDate:      "31 Aug 2026",
		PaymentMethod:    "Credit Card (xxxx-3486)",
		CheckInDate:      "2026-09-01",
		CheckOutDate:     "2026-09-04",
	}
}

func bookingColumns() []string {
	return []string{"id", "booking_reference", "guest_id", "room_number", "payment_amount", "payment_date", "payment_method", "created_at"}
}

func TestCreateBookingHappyPath(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	p := bookingParams()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT guest_id FROM guests WHERE email = \$1`).
		WithArgs(p.GuestEmail).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id"}).AddRow(7))
	mock.ExpectQuery(`SELECT room_number FROM rooms WHERE room_number = \$1`).
		WithArgs(p.RoomNumber).
		WillReturnRows(sqlmock.NewRows([]string{"room_number"}).AddRow("204"))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(p.BookingReference, 7, p.RoomNumber, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, p.CheckInDate, p.CheckOutDate).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, p.BookingReference, 7, p.RoomNumber, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, time.Now()))
	mock.ExpectExec(`UPDATE rooms SET status = \$1 WHERE room_number = \$2`).
		WithArgs(db.RoomStatusUnavailable, p.RoomNumber).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewBookingRepository(conn)
	booking, err := repo.CreateBooking(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.BookingReference, booking.BookingReference)
	assert.Equal(t, 7, booking.GuestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingCreatesPlaceholderGuestAndRoom(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	p := bookingParams()
	p.GuestFirstName = ""
	p.GuestLastName = ""

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT guest_id FROM guests WHERE email = \$1`).
		WithArgs(p.GuestEmail).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id"}))
	mock.ExpectQuery(`INSERT INTO guests`).
		WithArgs(db.PlaceholderGuestName, db.PlaceholderGuestName, p.GuestEmail, p.GuestPhone).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id"}).AddRow(12))
	mock.ExpectQuery(`SELECT room_number FROM rooms WHERE room_number = \$1`).
		WithArgs(p.RoomNumber).
		WillReturnRows(sqlmock.NewRows([]string{"room_number"}))
	mock.ExpectExec(`INSERT INTO rooms`).
		WithArgs(p.RoomNumber, db.PlaceholderRoomType, db.PlaceholderRoomRate, db.RoomStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(p.BookingReference, 12, p.RoomNumber, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, p.CheckInDate, p.CheckOutDate).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(2, p.BookingReference, 12, p.RoomNumber, p.PaymentAmount, p.PaymentDate, p.PaymentMethod, time.Now()))
	mock.ExpectExec(`UPDATE rooms SET status = \$1 WHERE room_number = \$2`).
		WithArgs(db.RoomStatusUnavailable, p.RoomNumber).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewBookingRepository(conn)
	booking, err := repo.CreateBooking(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 12, booking.GuestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingDuplicateReference(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	p := bookingParams()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT guest_id FROM guests WHERE email = \$1`).
		WithArgs(p.GuestEmail).
		WillReturnRows(sqlmock.NewRows([]string{"guest_id"}).AddRow(7))
	mock.ExpectQuery(`SELECT room_number FROM rooms WHERE room_number = \$1`).
		WithArgs(p.RoomNumber).
		WillReturnRows(sqlmock.NewRows([]string{"room_number"}).AddRow("204"))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	repo := NewBookingRepository(conn)
	_, err = repo.CreateBooking(context.Background(), p)
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, apperrors.KindDuplicate, httpErr.Kind)
	assert.Equal(t, 409, httpErr.Code)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingGuestLookupFailureRollsBack(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	p := bookingParams()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT guest_id FROM guests WHERE email = \$1`).
		WithArgs(p.GuestEmail).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewBookingRepository(conn)
	_, err = repo.CreateBooking(context.Background(), p)
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, apperrors.KindGuestLookup, httpErr.Kind)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingMissingTableKind(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	p := bookingParams()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT guest_id FROM guests WHERE email = \$1`).
		WithArgs(p.GuestEmail).
		WillReturnError(&pq.Error{Code: "42P01"})
	mock.ExpectRollback()

	repo := NewBookingRepository(conn)
	_, err = repo.CreateBooking(context.Background(), p)
	require.Error(t, err)

	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, apperrors.KindMissingTable, httpErr.Kind)
	assert.Equal(t, "Table does not exist. Please check your database schema.", httpErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByReference(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(`SELECT id, booking_reference, guest_id, room_number, payment_amount, payment_date, payment_method, created_at`).
		WithArgs("TAJ-260831ABCD").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "TAJ-260831ABCD", 7, "204", 70800, "31 Aug 2026", "Credit Card (xxxx-3486)", time.Now()))

	repo := NewBookingRepository(conn)
	booking, err := repo.GetByReference(context.Background(), "TAJ-260831ABCD")
	require.NoError(t, err)
	assert.Equal(t, "204", booking.RoomNumber)
}

func TestGetByReferenceNotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(`SELECT id, booking_reference`).
		WithArgs("TAJ-000000XXXX").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	repo := NewBookingRepository(conn)
	_, err = repo.GetByReference(context.Background(), "TAJ-000000XXXX")
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}
