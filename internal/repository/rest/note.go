package rest

import (
	"context"
	"net/http"

	"rentacar-crm/internal/domain"
)

type noteRequest struct {
	Text      string `json:"text"`
	AgentName string `json:"agentName,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// AddNote creates a note under a booking and returns the whole updated booking.
func (c *Client) AddNote(ctx context.Context, bookingID string, note *domain.Note) (*domain.Booking, error) {
	body := noteRequest{Text: note.Text, AgentName: note.AgentName, CreatedBy: note.CreatedBy}
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPost, "/bookings/"+bookingID+"/notes", &body, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}

// UpdateNote edits a note's text and returns the whole updated booking.
func (c *Client) UpdateNote(ctx context.Context, bookingID, noteID, text string) (*domain.Booking, error) {
	body := noteRequest{Text: text}
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodPut, "/bookings/"+bookingID+"/notes/"+noteID, &body, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}

// DeleteNote removes a note and returns the whole updated booking. Deleting an
// already-deleted note is the server's concern; the client does not retry.
func (c *Client) DeleteNote(ctx context.Context, bookingID, noteID string) (*domain.Booking, error) {
	var env bookingEnvelope
	if err := c.do(ctx, http.MethodDelete, "/bookings/"+bookingID+"/notes/"+noteID, nil, &env); err != nil {
		return nil, err
	}
	return env.Booking, nil
}
