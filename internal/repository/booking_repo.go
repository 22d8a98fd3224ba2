package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hotelbooking/internal/db"
	apperrors "hotelbooking/internal/errors"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// CreateBookingParams carries everything the combined booking path needs.
// Guest name and phone are optional; a guest created here gets placeholder
// values when they are empty.
type CreateBookingParams struct {
	BookingReference string
	GuestEmail       string
	GuestFirstName   string
	GuestLastName    string
	GuestPhone       string
	RoomNumber       string
	PaymentAmount    int
	PaymentDate      string
	PaymentMethod    string
	CheckInDate      string
	CheckOutDate     string
}

// CreateBooking resolves the guest and room, inserts the booking row and
// marks the room unavailable, all in one transaction. Any step failing rolls
// the whole thing back. The returned error carries a distinguishable kind
// per step (guest lookup, room lookup, booking insert).
func (r *BookingRepository) CreateBooking(ctx context.Context, p CreateBookingParams) (*db.Booking, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	guestID, err := r.resolveGuest(ctx, tx, p)
	if err != nil {
		return nil, stepError(apperrors.KindGuestLookup, err)
	}

	if err := r.resolveRoom(ctx, tx, p.RoomNumber); err != nil {
		return nil, stepError(apperrors.KindRoomLookup, err)
	}

	var booking db.Booking
	err = tx.QueryRowContext(ctx,
		`INSERT INTO bookings (booking_reference, guest_id, room_number, payment_amount, payment_date, payment_method, check_in_date, check_out_date)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::date, NULLIF($8, '')::date)
		 RETURNING id, booking_reference, guest_id, room_number, payment_amount, payment_date, payment_method, created_at`,
		p.BookingReference, guestID, p.RoomNumber, p.PaymentAmount, p.PaymentDate, p.PaymentMethod,
		p.CheckInDate, p.CheckOutDate,
	).Scan(
		&booking.ID, &booking.BookingReference, &booking.GuestID, &booking.RoomNumber,
		&booking.PaymentAmount, &booking.PaymentDate, &booking.PaymentMethod, &booking.CreatedAt,
	)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, stepError(apperrors.KindDuplicate, apperrors.ErrDuplicateReference)
		}
		return nil, stepError(apperrors.KindBookingInsert, err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rooms SET status = $1 WHERE room_number = $2`,
		db.RoomStatusUnavailable, p.RoomNumber,
	); err != nil {
		return nil, stepError(apperrors.KindBookingInsert, fmt.Errorf("mark room unavailable: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, stepError(apperrors.KindBookingInsert, fmt.Errorf("commit booking: %w", err))
	}
	return &booking, nil
}

// resolveGuest looks the guest up by email and creates one with placeholder
// name fields if absent. ON CONFLICT DO NOTHING keeps a concurrent create
// from aborting the transaction; the follow-up select picks up the winner.
func (r *BookingRepository) resolveGuest(ctx context.Context, tx *sql.Tx, p CreateBookingParams) (int, error) {
	var guestID int
	err := tx.QueryRowContext(ctx,
		`SELECT guest_id FROM guests WHERE email = $1`, p.GuestEmail,
	).Scan(&guestID)
	if err == nil {
		return guestID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lookup guest: %w", err)
	}

	fname, lname := p.GuestFirstName, p.GuestLastName
	if fname == "" {
		fname = db.PlaceholderGuestName
	}
	if lname == "" {
		lname = db.PlaceholderGuestName
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO guests (fname, lname, email, phone_no)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING guest_id`,
		fname, lname, p.GuestEmail, p.GuestPhone,
	).Scan(&guestID)
	if err == nil {
		return guestID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("create guest: %w", err)
	}
	// Lost the race; the row exists now.
	if err := tx.QueryRowContext(ctx,
		`SELECT guest_id FROM guests WHERE email = $1`, p.GuestEmail,
	).Scan(&guestID); err != nil {
		return 0, fmt.Errorf("lookup guest after conflict: %w", err)
	}
	return guestID, nil
}

// resolveRoom ensures a row exists for the room number, creating a
// placeholder available room if the inventory never registered it.
func (r *BookingRepository) resolveRoom(ctx context.Context, tx *sql.Tx, roomNumber string) error {
	var existing string
	err := tx.QueryRowContext(ctx,
		`SELECT room_number FROM rooms WHERE room_number = $1`, roomNumber,
	).Scan(&existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lookup room: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (room_number, room_type, price, status)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (room_number) DO NOTHING`,
		roomNumber, db.PlaceholderRoomType, db.PlaceholderRoomRate, db.RoomStatusAvailable,
	); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*db.Booking, error) {
	var booking db.Booking
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, booking_reference, guest_id, room_number, payment_amount, payment_date, payment_method, created_at
		 FROM bookings WHERE booking_reference = $1`,
		reference,
	).Scan(
		&booking.ID, &booking.BookingReference, &booking.GuestID, &booking.RoomNumber,
		&booking.PaymentAmount, &booking.PaymentDate, &booking.PaymentMethod, &booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("error querying booking by reference: %w", err)
	}
	return &booking, nil
}

// stepError attaches the failing step's kind, preferring the Postgres
// taxonomy when the driver reports a recognizable constraint code.
func stepError(step apperrors.Kind, err error) error {
	kind := apperrors.ClassifyDB(err)
	if kind == apperrors.KindGeneric {
		kind = step
	}
	return &apperrors.HTTPError{
		Code:    apperrors.StatusFor(kind),
		Kind:    kind,
		Message: apperrors.MessageFor(kind),
		Err:     err,
	}
}
