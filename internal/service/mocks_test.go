package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentacar-crm/internal/domain"
)

// MockBookingAPI
type MockBookingAPI struct {
	mock.Mock
}

func (m *MockBookingAPI) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) UpdateBooking(ctx context.Context, id string, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, id, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingAPI) CancelBooking(ctx context.Context, req *domain.CancellationRequest) (*domain.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) AddNote(ctx context.Context, bookingID string, note *domain.Note) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) UpdateNote(ctx context.Context, bookingID, noteID, text string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, noteID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingAPI) DeleteNote(ctx context.Context, bookingID, noteID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

// MockCompanyAPI
type MockCompanyAPI struct {
	mock.Mock
}

func (m *MockCompanyAPI) ListCompanies(ctx context.Context) ([]domain.RentalCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalCompany), args.Error(1)
}
func (m *MockCompanyAPI) CreateCompany(ctx context.Context, name string) (*domain.RentalCompany, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalCompany), args.Error(1)
}
