package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/db"
	"hotelbooking/internal/entities"
	"hotelbooking/internal/service"
)

// MockBookingService is a mock implementation of service.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SubmitGuest(ctx context.Context, g entities.GuestDetails) (*db.Guest, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Guest), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req service.CreateBookingRequest) (*db.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingService) GetBookingByReference(ctx context.Context, reference string) (*db.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.Booking), args.Error(1)
}

func (m *MockBookingService) SaveRoomInfo(ctx context.Context, info *db.RoomInfo) (int, error) {
	args := m.Called(ctx, info)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) ListRooms(ctx context.Context, status string) ([]db.Room, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.Room), args.Error(1)
}
