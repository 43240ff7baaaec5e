package repository

import (
	"context"

	"rentacar-crm/internal/domain"
)

type BookingAPI interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, id string, booking *domain.Booking) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	CancelBooking(ctx context.Context, req *domain.CancellationRequest) (*domain.Booking, error)

	// Notes are a sub-resource; every operation returns the whole updated booking.
	AddNote(ctx context.Context, bookingID string, note *domain.Note) (*domain.Booking, error)
	UpdateNote(ctx context.Context, bookingID, noteID, text string) (*domain.Booking, error)
	DeleteNote(ctx context.Context, bookingID, noteID string) (*domain.Booking, error)
}

type CompanyAPI interface {
	ListCompanies(ctx context.Context) ([]domain.RentalCompany, error)
	CreateCompany(ctx context.Context, name string) (*domain.RentalCompany, error)
}
