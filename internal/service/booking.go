package service

import (
	"context"
	"fmt"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/repository"
	"rentacar-crm/internal/store"
	"rentacar-crm/internal/utils"
)

type bookingService struct {
	store      *store.BookingStore
	api        repository.BookingAPI
	companySvc CompanyService
}

func NewBookingService(bookingStore *store.BookingStore, api repository.BookingAPI, companySvc CompanyService) BookingService {
	return &bookingService{store: bookingStore, api: api, companySvc: companySvc}
}

// CreateBooking derives the initial MCO, ensures the rental company exists,
// and submits the new booking. The company step is a distinct phase: if it
// succeeds and the booking save then fails, the company stays created.
func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking, agentName string) (*domain.Booking, error) {
	if booking.RentalCompany == "" {
		return nil, domain.NewValidationError("rentalCompany", "rental company name is required")
	}

	if _, err := s.companySvc.EnsureCompany(ctx, booking.RentalCompany); err != nil {
		return nil, fmt.Errorf("failed to ensure rental company: %w", err)
	}

	mco, err := utils.InitialMCO(booking.Total, booking.PayableAtPickup)
	if err != nil {
		return nil, domain.NewValidationError("total", err.Error())
	}
	booking.MCO = mco
	booking.Status = domain.BookingStatusBooked
	booking.SalesAgent = agentName

	saved, err := s.store.Save(ctx, booking, "")
	if err != nil {
		return nil, err
	}
	logger.Info("Booking created", "booking_id", saved.ID, "agent", agentName, "mco", saved.MCO)
	return saved, nil
}

// ModifyBooking applies a set of field updates to the resident booking,
// appends the modification fee to the ledger, recomputes MCO from the fee,
// records one timeline entry, and saves. Zero updates or a blank fee abort
// before any network call.
func (s *bookingService) ModifyBooking(ctx context.Context, id string, updates []FieldUpdate, feeCharge, agentName string) (*domain.Booking, error) {
	if len(updates) == 0 {
		return nil, domain.NewValidationError("updates", "at least one changed field is required")
	}

	booking, err := s.store.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := make([]domain.TimelineChange, 0, len(updates))
	for _, u := range updates {
		field, ok := editableFields[u.Field]
		if !ok {
			return nil, domain.NewValidationError(u.Field, "not an editable booking field")
		}
		changes = append(changes, domain.TimelineChange{
			Field:    u.Field,
			OldValue: field.get(booking),
			NewValue: u.NewValue,
		})
	}

	if err := booking.AppendFee(feeCharge); err != nil {
		return nil, err
	}
	newMCO, err := utils.ModifiedMCO(booking.MCO, booking.CurrentCharge())
	if err != nil {
		return nil, domain.NewValidationError("charge", err.Error())
	}

	entry, err := domain.NewTimelineEntry(agentName, changes)
	if err != nil {
		return nil, err
	}

	for _, u := range updates {
		editableFields[u.Field].set(booking, u.NewValue)
	}
	booking.MCO = newMCO
	booking.Status = domain.BookingStatusModified
	booking.SalesAgent = agentName
	booking.Timeline = append(booking.Timeline, entry)

	// A renamed rental company may be one the registry has never seen.
	if _, err := s.companySvc.EnsureCompany(ctx, booking.RentalCompany); err != nil {
		return nil, fmt.Errorf("failed to ensure rental company: %w", err)
	}

	saved, err := s.store.Save(ctx, booking, id)
	if err != nil {
		return nil, err
	}
	logger.Info("Booking modified", "booking_id", id, "agent", agentName, "fields", len(updates), "mco", saved.MCO)
	return saved, nil
}

// DeleteBooking removes a booking through the store.
func (s *bookingService) DeleteBooking(ctx context.Context, id string) (string, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	logger.Info("Booking deleted", "booking_id", id)
	return deleted, nil
}
