package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/repository"
)

// Operation names one of the store's asynchronous operations. Each carries
// its own OperationStatus.
type Operation string

const (
	OpFetchAll  Operation = "fetchAll"
	OpFetchByID Operation = "fetchById"
	OpSave      Operation = "save"
	OpDelete    Operation = "delete"
)

// BookingStore owns the canonical copy of the booking currently being viewed
// and the full bookings list. All other components receive clones or pure
// derivations; nothing outside the store writes to either.
//
// Each fetch of a single booking carries a token. A later fetch for a
// different id replaces the token, so a stale in-flight response can no
// longer commit and silently overwrite the current booking.
type BookingStore struct {
	mu  sync.Mutex
	api repository.BookingAPI

	current    *domain.Booking
	list       []domain.Booking
	fetchToken string

	statuses map[Operation]*domain.OperationStatus
}

// New creates a store backed by the given booking API.
func New(api repository.BookingAPI) *BookingStore {
	return &BookingStore{
		api: api,
		statuses: map[Operation]*domain.OperationStatus{
			OpFetchAll:  {Phase: domain.OperationIdle},
			OpFetchByID: {Phase: domain.OperationIdle},
			OpSave:      {Phase: domain.OperationIdle},
			OpDelete:    {Phase: domain.OperationIdle},
		},
	}
}

// FetchAll replaces the full bookings list. On failure the previous list is
// left untouched and the operation status carries the error.
func (s *BookingStore) FetchAll(ctx context.Context) ([]domain.Booking, error) {
	s.mu.Lock()
	s.statuses[OpFetchAll].Begin(false)
	s.mu.Unlock()

	bookings, err := s.api.ListBookings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.statuses[OpFetchAll].Fail(err.Error())
		return nil, err
	}
	s.list = bookings
	s.statuses[OpFetchAll].Succeed()
	return s.cloneList(), nil
}

// FetchByID loads one booking into the store. When the requested booking is
// already resident it short-circuits without a network call. A concurrent
// fetch for a different id invalidates this one: whichever call started last
// owns the token, and only its response commits.
func (s *BookingStore) FetchByID(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		b := s.current.Clone()
		s.mu.Unlock()
		return b, nil
	}
	token := uuid.NewString()
	s.fetchToken = token
	s.statuses[OpFetchByID].Begin(false)
	s.mu.Unlock()

	booking, err := s.api.GetBooking(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchToken != token {
		// A newer fetch superseded this one; drop the response.
		logger.Debug("Discarding stale fetch response", "booking_id", id)
		return nil, domain.NewNotFoundError("booking", id)
	}
	if err != nil {
		s.statuses[OpFetchByID].Fail(err.Error())
		return nil, err
	}
	s.current = booking
	s.statuses[OpFetchByID].Succeed()
	return s.current.Clone(), nil
}

// Save creates the booking when id is empty, else updates it. On success the
// server's record replaces the current booking wholesale; the server is the
// source of truth for derived fields such as MCO.
func (s *BookingStore) Save(ctx context.Context, booking *domain.Booking, id string) (*domain.Booking, error) {
	s.mu.Lock()
	s.statuses[OpSave].Begin(true)
	s.mu.Unlock()

	var saved *domain.Booking
	var err error
	if id == "" {
		saved, err = s.api.CreateBooking(ctx, booking)
	} else {
		saved, err = s.api.UpdateBooking(ctx, id, booking)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.statuses[OpSave].Fail(err.Error())
		return nil, err
	}
	s.adopt(saved)
	s.statuses[OpSave].Succeed()
	return saved.Clone(), nil
}

// Delete removes a booking. The list entry goes away only on confirmed
// success, never optimistically.
func (s *BookingStore) Delete(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	s.statuses[OpDelete].Begin(true)
	s.mu.Unlock()

	err := s.api.DeleteBooking(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.statuses[OpDelete].Fail(err.Error())
		return "", err
	}
	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.statuses[OpDelete].Succeed()
	return id, nil
}

// Adopt replaces the current booking with a server-authoritative record, the
// success-path reducer used by note and cancellation operations.
func (s *BookingStore) Adopt(booking *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adopt(booking)
}

func (s *BookingStore) adopt(booking *domain.Booking) {
	if booking == nil {
		return
	}
	s.current = booking
	for i := range s.list {
		if s.list[i].ID == booking.ID {
			s.list[i] = *booking.Clone()
			return
		}
	}
}

// Clear resets the current booking and every operation status to initial
// values. Called when the consuming view is torn down so stale data cannot
// leak into the next view.
func (s *BookingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.fetchToken = ""
	for _, st := range s.statuses {
		st.Reset()
	}
}

// Current returns a clone of the booking currently being viewed, or nil.
func (s *BookingStore) Current() *domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Bookings returns a clone of the full bookings list.
func (s *BookingStore) Bookings() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneList()
}

// Status returns a snapshot of one operation's status.
func (s *BookingStore) Status(op Operation) domain.OperationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.statuses[op]
}

// ResetStatus acknowledges a terminal phase, returning the operation to idle.
func (s *BookingStore) ResetStatus(op Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[op].Reset()
}

func (s *BookingStore) cloneList() []domain.Booking {
	out := make([]domain.Booking, len(s.list))
	for i := range s.list {
		out[i] = *s.list[i].Clone()
	}
	return out
}
