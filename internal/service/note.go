package service

import (
	"context"
	"strings"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/repository"
	"rentacar-crm/internal/store"
)

type noteService struct {
	store *store.BookingStore
	api   repository.BookingAPI
}

func NewNoteService(bookingStore *store.BookingStore, api repository.BookingAPI) NoteService {
	return &noteService{store: bookingStore, api: api}
}

// AddNote creates a note under a booking. Text that trims to empty is
// rejected before any network call. The server assigns id and timestamps; the
// returned booking replaces the store's current copy wholesale.
func (s *noteService) AddNote(ctx context.Context, bookingID, text, agentID, agentName string) (*domain.Booking, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "note text must not be empty")
	}
	note := &domain.Note{Text: text, AgentName: agentName, CreatedBy: agentID}
	booking, err := s.api.AddNote(ctx, bookingID, note)
	if err != nil {
		return nil, err
	}
	s.store.Adopt(booking)
	logger.Info("Note added", "booking_id", bookingID, "agent", agentName)
	return booking, nil
}

// UpdateNote edits a note's text. Ownership gating lives in the UI; the
// server boundary is the authoritative check.
func (s *noteService) UpdateNote(ctx context.Context, bookingID, noteID, text string) (*domain.Booking, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "note text must not be empty")
	}
	booking, err := s.api.UpdateNote(ctx, bookingID, noteID, text)
	if err != nil {
		return nil, err
	}
	s.store.Adopt(booking)
	logger.Info("Note updated", "booking_id", bookingID, "note_id", noteID)
	return booking, nil
}

// DeleteNote removes a note. Deleting an already-deleted note is the server's
// concern; the caller sees whatever the server answers.
func (s *noteService) DeleteNote(ctx context.Context, bookingID, noteID string) (*domain.Booking, error) {
	booking, err := s.api.DeleteNote(ctx, bookingID, noteID)
	if err != nil {
		return nil, err
	}
	s.store.Adopt(booking)
	logger.Info("Note deleted", "booking_id", bookingID, "note_id", noteID)
	return booking, nil
}
