package rest

import (
	"context"
	"net/http"

	"rentacar-crm/internal/domain"
)

type bookingsEnvelope struct {
	Bookings []domain.Booking `json:"bookings"`
}

type bookingEnvelope struct {
	Booking *domain.Booking `json:"booking"`
}

// ListBookings fetches every booking.
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var env bookingsEnvelope
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &env); err != nil {
		return nil, err
	}
	return env.Bookings, nil
}

// GetBooking fetches one booking by id. A 404 or an empty envelope maps to
// NotFoundError.
func (c *Client) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	var env bookingEnvelope
	err := c.do(ctx, http.MethodGet, "/bookings/"+id, nil, &env)
	if err != nil {
		if apiErr, ok := err.(*domain.APIError); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, domain.NewNotFoundError("booking", id)
		}
		return nil, err
	}
	if env.Booking == nil {
		return nil, domain.NewNotFoundError("booking", id)
	}
	return env.Booking, nil
}

// CreateBooking creates a booking and returns the server's record, which
// carries the assigned id, createdAt and derived fields.
func (c *Client) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings", booking, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}

// UpdateBooking updates a booking. The identity field is stripped from the
// payload; the id only travels in the path.
func (c *Client) UpdateBooking(ctx context.Context, id string, booking *domain.Booking) (*domain.Booking, error) {
	patch := *booking
	patch.ID = ""
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPut, "/bookings/"+id, &patch, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}

// DeleteBooking deletes a booking. Success needs no response body.
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+id, nil, nil)
}

// CancelBooking calls the cancellation endpoint, which performs the status
// transition to CANCELLED server-side.
func (c *Client) CancelBooking(ctx context.Context, req *domain.CancellationRequest) (*domain.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings/cancel", req, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}
