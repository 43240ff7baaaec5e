package domain

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusModified  BookingStatus = "MODIFIED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ModificationFee is one entry of a booking's fee ledger. Charges are decimal
// strings on the wire; arithmetic happens in internal/utils.
type ModificationFee struct {
	Charge string `json:"charge"`
}

// Booking is the central entity. The server is the source of truth for derived
// fields (MCO, RefundAmount, CreatedAt); the client recomputes them only to
// build the patch it submits.
type Booking struct {
	ID string `json:"id,omitempty"`

	// Customer
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	// Commercial
	RentalCompany      string `json:"rentalCompany"`
	ConfirmationNumber string `json:"confirmationNumber,omitempty"`
	VehicleImage       string `json:"vehicleImage,omitempty"`
	Total              string `json:"total"`
	PayableAtPickup    string `json:"payableAtPickup"`
	MCO                string `json:"mco"`
	RefundAmount       string `json:"refundAmount,omitempty"`

	// Schedule. Four independent strings, no combined timestamp.
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`

	// Payment
	CardLastFour   string `json:"cardLastFour,omitempty"`
	CardExpiration string `json:"cardExpiration,omitempty"`
	BillingAddress string `json:"billingAddress,omitempty"`

	// Lifecycle
	Status     BookingStatus `json:"status"`
	SalesAgent string        `json:"salesAgent"`
	CreatedAt  string        `json:"createdAt,omitempty"`

	ModificationFees []ModificationFee `json:"modificationFee"`
	Timeline         []TimelineEntry   `json:"timeline"`
	Notes            []Note            `json:"notes"`
}

// AppendFee pushes a charge onto the fee ledger. The ledger is append-only;
// entries are never reordered.
func (b *Booking) AppendFee(charge string) error {
	if isBlank(charge) {
		return NewValidationError("charge", "modification fee charge must not be empty")
	}
	b.ModificationFees = append(b.ModificationFees, ModificationFee{Charge: charge})
	return nil
}

// RemoveLastFee pops the tail entry of the fee ledger. No-op on an empty ledger.
func (b *Booking) RemoveLastFee() {
	if len(b.ModificationFees) == 0 {
		return
	}
	b.ModificationFees = b.ModificationFees[:len(b.ModificationFees)-1]
}

// CurrentCharge returns the charge of the last ledger entry, or "0" when the
// ledger is empty. Only the latest entry affects MCO.
func (b *Booking) CurrentCharge() string {
	if len(b.ModificationFees) == 0 {
		return "0"
	}
	return b.ModificationFees[len(b.ModificationFees)-1].Charge
}

// Clone returns a deep copy. Consumers of the store receive clones so the
// canonical copy is only ever mutated through the store itself.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	out := *b
	if b.ModificationFees != nil {
		out.ModificationFees = make([]ModificationFee, len(b.ModificationFees))
		copy(out.ModificationFees, b.ModificationFees)
	}
	if b.Timeline != nil {
		out.Timeline = make([]TimelineEntry, len(b.Timeline))
		copy(out.Timeline, b.Timeline)
		for i := range out.Timeline {
			if b.Timeline[i].Changes != nil {
				out.Timeline[i].Changes = make([]TimelineChange, len(b.Timeline[i].Changes))
				copy(out.Timeline[i].Changes, b.Timeline[i].Changes)
			}
		}
	}
	if b.Notes != nil {
		out.Notes = make([]Note, len(b.Notes))
		copy(out.Notes, b.Notes)
	}
	return &out
}

// FindNote returns the note with the given id, or nil.
func (b *Booking) FindNote(noteID string) *Note {
	for i := range b.Notes {
		if b.Notes[i].ID == noteID {
			return &b.Notes[i]
		}
	}
	return nil
}
