package service

import (
	"context"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/utils"
)

// CancelBooking derives the refund and the post-cancellation MCO, then calls
// the cancellation endpoint. The cancellation fee replaces the booking's MCO;
// the refund is the prior MCO less the fee, floored at zero. The CANCELLED
// status transition itself happens server-side.
func (s *bookingService) CancelBooking(ctx context.Context, input CancelInput) (*CancelResult, error) {
	if input.Email == "" {
		return nil, domain.NewValidationError("email", "customer email is required")
	}
	if input.CancellationFee == "" {
		return nil, domain.NewValidationError("cancellationFee", "cancellation fee is required")
	}

	priorMCO := input.PriorMCO
	customerType := domain.CustomerTypeNew
	if input.BookingID != "" {
		booking, err := s.store.FetchByID(ctx, input.BookingID)
		if err != nil {
			return nil, err
		}
		priorMCO = booking.MCO
		customerType = domain.CustomerTypeExisting
	}

	figures, err := utils.ComputeRefund(priorMCO, input.CancellationFee)
	if err != nil {
		return nil, domain.NewValidationError("cancellationFee", err.Error())
	}

	req := &domain.CancellationRequest{
		BookingID:    input.BookingID,
		Email:        input.Email,
		CustomerType: customerType,
		RefundAmount: figures.Refund,
		MCO:          figures.NewMCO,
		SalesAgent:   input.AgentName,
		FullName:     input.FullName,
		Phone:        input.Phone,
	}

	booking, err := s.api.CancelBooking(ctx, req)
	if err != nil {
		return nil, err
	}
	if booking != nil {
		s.store.Adopt(booking)
	}

	logger.Info("Booking cancelled",
		"booking_id", input.BookingID,
		"agent", input.AgentName,
		"refund", figures.Refund,
		"mco", figures.NewMCO,
	)
	return &CancelResult{
		Booking:      booking,
		RefundAmount: figures.Refund,
		NewMCO:       figures.NewMCO,
	}, nil
}
