package service

import (
	"context"

	"rentacar-crm/internal/domain"
)

// FieldUpdate is one edit selected by the agent: which editable field changes
// and the value it takes.
type FieldUpdate struct {
	Field    string `json:"field"`
	NewValue string `json:"newValue"`
}

// CancelInput carries everything the cancellation flow needs. For an existing
// customer the booking id identifies the record and the prior MCO is read
// from it; for a new customer the agent supplies the figures directly.
type CancelInput struct {
	BookingID       string `json:"bookingId,omitempty"`
	FullName        string `json:"fullName,omitempty"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	PriorMCO        string `json:"priorMco,omitempty"`
	CancellationFee string `json:"cancellationFee"`
	AgentName       string `json:"agentName"`
}

// CancelResult reports the derived cancellation figures alongside the updated
// booking (nil for new-customer cancellations).
type CancelResult struct {
	Booking      *domain.Booking `json:"booking,omitempty"`
	RefundAmount string          `json:"refundAmount"`
	NewMCO       string          `json:"mco"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, booking *domain.Booking, agentName string) (*domain.Booking, error)
	ModifyBooking(ctx context.Context, id string, updates []FieldUpdate, feeCharge, agentName string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, input CancelInput) (*CancelResult, error)
	DeleteBooking(ctx context.Context, id string) (string, error)
}

type NoteService interface {
	AddNote(ctx context.Context, bookingID, text, agentID, agentName string) (*domain.Booking, error)
	UpdateNote(ctx context.Context, bookingID, noteID, text string) (*domain.Booking, error)
	DeleteNote(ctx context.Context, bookingID, noteID string) (*domain.Booking, error)
}

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]domain.RentalCompany, error)
	EnsureCompany(ctx context.Context, name string) (*domain.RentalCompany, error)
}
