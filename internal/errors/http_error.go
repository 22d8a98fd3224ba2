package errors

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind distinguishes the failure classes the booking path can hit, so
// callers never have to parse message strings.
type Kind string

const (
	KindGuestLookup   Kind = "guest-lookup-failure"
	KindRoomLookup    Kind = "room-lookup-failure"
	KindBookingInsert Kind = "booking-insert-failure"
	KindDuplicate     Kind = "duplicate-booking"
	KindNotNull       Kind = "not-null-violation"
	KindForeignKey    Kind = "foreign-key-violation"
	KindMissingTable  Kind = "missing-table"
	KindMissingColumn Kind = "missing-column"
	KindValidation    Kind = "validation-failure"
	KindGeneric       Kind = "generic"
)

// HTTPError represents an error with an associated HTTP status code and kind.
type HTTPError struct {
	Code    int
	Kind    Kind
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates a new HTTPError with the given code, kind and message.
func NewHTTPError(code int, kind Kind, message string) *HTTPError {
	return &HTTPError{Code: code, Kind: kind, Message: message}
}

// Sentinels for the wizard and the upsert path.
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrDuplicateReference = errors.New("booking reference already used")
	ErrDatesNotSelected   = errors.New("dates not selected")
	ErrRoomNotSelected    = errors.New("room not selected")
	ErrStayTooLong        = errors.New("stay exceeds the maximum length")
	ErrSessionNotFound    = errors.New("session not found")
)

// pq error codes the booking endpoint reports with dedicated messages.
const (
	pqNotNull       = "23502"
	pqForeignKey    = "23503"
	pqUnique        = "23505"
	pqMissingTable  = "42P01"
	pqMissingColumn = "42703"
)

// ClassifyDB maps a storage error to its Kind. Unknown errors are generic.
func ClassifyDB(err error) Kind {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return KindGeneric
	}
	switch string(pgErr.Code) {
	case pqNotNull:
		return KindNotNull
	case pqForeignKey:
		return KindForeignKey
	case pqUnique:
		return KindDuplicate
	case pqMissingTable:
		return KindMissingTable
	case pqMissingColumn:
		return KindMissingColumn
	default:
		return KindGeneric
	}
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint error,
// the signal that a concurrent writer won a lookup-or-create race.
func IsUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && string(pgErr.Code) == pqUnique
}

// MessageFor mirrors the diagnostics the booking endpoint reports per kind.
func MessageFor(kind Kind) string {
	switch kind {
	case KindMissingTable:
		return "Table does not exist. Please check your database schema."
	case KindMissingColumn:
		return "Column not found. Your database schema may be out of date."
	case KindNotNull:
		return "Not-null constraint violation. A required column is missing."
	case KindForeignKey:
		return "Foreign key constraint violation. Referenced row may not exist."
	case KindDuplicate:
		return "A booking with this reference already exists."
	default:
		return "Failed to save booking to database"
	}
}

// StatusFor maps a kind to the HTTP status the handlers answer with.
func StatusFor(kind Kind) int {
	switch kind {
	case KindDuplicate:
		return http.StatusConflict
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotNull, KindForeignKey:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
