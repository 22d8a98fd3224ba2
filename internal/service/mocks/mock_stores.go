package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
	"hotelbooking/internal/repository"
)

// MockGuestStore is a mock implementation of service.GuestStore
type MockGuestStore struct {
	mock.Mock
}

func (m *MockGuestStore) Upsert(ctx context.Context, g *db.Guest) (*db.Guest, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Guest), args.Error(1)
}

func (m *MockGuestStore) GetByEmail(ctx context.Context, email string) (*db.Guest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Guest), args.Error(1)
}

// MockRoomStore is a mock implementation of service.RoomStore
type MockRoomStore struct {
	mock.Mock
}

func (m *MockRoomStore) ListRooms(ctx context.Context, status string) ([]db.Room, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Room), args.Error(1)
}

func (m *MockRoomStore) SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error) {
	args := m.Called(ctx, info)
	return args.Int(0), args.Error(1)
}

// MockBookingStore is a mock implementation of service.BookingStore
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, p repository.CreateBookingParams) (*db.Booking, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByReference(ctx context.Context, reference string) (*db.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

// MockBookingNotifier is a mock implementation of service.BookingNotifier
type MockBookingNotifier struct {
	mock.Mock
}

func (m *MockBookingNotifier) SendBookingEmail(guest db.Guest, booking db.Booking, data entities.BookingEmailData) {
	m.Called(guest, booking, data)
}

func (m *MockBookingNotifier) SendBookingSMS(guest db.Guest, booking db.Booking) {
	m.Called(guest, booking)
}
