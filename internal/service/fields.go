package service

import "rentacar-crm/internal/domain"

// editableField binds a field name to typed accessors so timeline text is
// built from an enumerated set instead of stringly reflection over the
// booking struct.
type editableField struct {
	get func(*domain.Booking) string
	set func(*domain.Booking, string)
}

var editableFields = map[string]editableField{
	"fullName": {
		get: func(b *domain.Booking) string { return b.FullName },
		set: func(b *domain.Booking, v string) { b.FullName = v },
	},
	"email": {
		get: func(b *domain.Booking) string { return b.Email },
		set: func(b *domain.Booking, v string) { b.Email = v },
	},
	"phone": {
		get: func(b *domain.Booking) string { return b.Phone },
		set: func(b *domain.Booking, v string) { b.Phone = v },
	},
	"dateOfBirth": {
		get: func(b *domain.Booking) string { return b.DateOfBirth },
		set: func(b *domain.Booking, v string) { b.DateOfBirth = v },
	},
	"rentalCompany": {
		get: func(b *domain.Booking) string { return b.RentalCompany },
		set: func(b *domain.Booking, v string) { b.RentalCompany = v },
	},
	"confirmationNumber": {
		get: func(b *domain.Booking) string { return b.ConfirmationNumber },
		set: func(b *domain.Booking, v string) { b.ConfirmationNumber = v },
	},
	"vehicleImage": {
		get: func(b *domain.Booking) string { return b.VehicleImage },
		set: func(b *domain.Booking, v string) { b.VehicleImage = v },
	},
	"total": {
		get: func(b *domain.Booking) string { return b.Total },
		set: func(b *domain.Booking, v string) { b.Total = v },
	},
	"payableAtPickup": {
		get: func(b *domain.Booking) string { return b.PayableAtPickup },
		set: func(b *domain.Booking, v string) { b.PayableAtPickup = v },
	},
	"pickupLocation": {
		get: func(b *domain.Booking) string { return b.PickupLocation },
		set: func(b *domain.Booking, v string) { b.PickupLocation = v },
	},
	"dropoffLocation": {
		get: func(b *domain.Booking) string { return b.DropoffLocation },
		set: func(b *domain.Booking, v string) { b.DropoffLocation = v },
	},
	"pickupDate": {
		get: func(b *domain.Booking) string { return b.PickupDate },
		set: func(b *domain.Booking, v string) { b.PickupDate = v },
	},
	"pickupTime": {
		get: func(b *domain.Booking) string { return b.PickupTime },
		set: func(b *domain.Booking, v string) { b.PickupTime = v },
	},
	"cardLastFour": {
		get: func(b *domain.Booking) string { return b.CardLastFour },
		set: func(b *domain.Booking, v string) { b.CardLastFour = v },
	},
	"cardExpiration": {
		get: func(b *domain.Booking) string { return b.CardExpiration },
		set: func(b *domain.Booking, v string) { b.CardExpiration = v },
	},
	"billingAddress": {
		get: func(b *domain.Booking) string { return b.BillingAddress },
		set: func(b *domain.Booking, v string) { b.BillingAddress = v },
	},
}

// EditableFieldNames lists the fields a modification may touch.
func EditableFieldNames() []string {
	names := make([]string, 0, len(editableFields))
	for name := range editableFields {
		names = append(names, name)
	}
	return names
}
