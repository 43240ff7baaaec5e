package domain

// CustomerType distinguishes cancellations against an existing booking from
// walk-in cancellations where no booking id is known yet.
type CustomerType string

const (
	CustomerTypeExisting CustomerType = "existing"
	CustomerTypeNew      CustomerType = "new"
)

// CancellationRequest is the payload of the cancellation endpoint. The status
// transition to CANCELLED happens server-side; the client supplies the
// figures it derived. Customer fields are only required when no booking id is
// present.
type CancellationRequest struct {
	BookingID    string       `json:"bookingId,omitempty"`
	Email        string       `json:"email"`
	CustomerType CustomerType `json:"customerType"`
	RefundAmount string       `json:"refundAmount"`
	MCO          string       `json:"mco"`
	SalesAgent   string       `json:"salesAgent"`

	// New-customer fields, used when BookingID is empty.
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
