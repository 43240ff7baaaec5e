package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/store"
)

func newBookingFixture() (*MockBookingAPI, *MockCompanyAPI, BookingService, *store.BookingStore) {
	api := new(MockBookingAPI)
	companyAPI := new(MockCompanyAPI)
	bookingStore := store.New(api)
	svc := NewBookingService(bookingStore, api, NewCompanyService(companyAPI))
	return api, companyAPI, svc, bookingStore
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesInitialMCO", func(t *testing.T) {
		api, companyAPI, svc, _ := newBookingFixture()
		companyAPI.On("ListCompanies", ctx).Return([]domain.RentalCompany{{ID: "c1", Name: "Hertz"}}, nil)
		api.On("CreateBooking", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.MCO == "200.00" &&
				b.Status == domain.BookingStatusBooked &&
				b.SalesAgent == "Alex Agent"
		})).Return(&domain.Booking{ID: "b1", MCO: "200.00", Status: domain.BookingStatusBooked}, nil)

		draft := &domain.Booking{
			FullName:        "Jane Customer",
			RentalCompany:   "Hertz",
			Total:           "300.00",
			PayableAtPickup: "100.00",
		}
		saved, err := svc.CreateBooking(ctx, draft, "Alex Agent")
		require.NoError(t, err)
		assert.Equal(t, "b1", saved.ID)
		companyAPI.AssertNotCalled(t, "CreateCompany", mock.Anything, mock.Anything)
	})

	t.Run("CreatesUnseenCompanyFirst", func(t *testing.T) {
		api, companyAPI, svc, _ := newBookingFixture()
		companyAPI.On("ListCompanies", ctx).Return([]domain.RentalCompany{{ID: "c1", Name: "Hertz"}}, nil)
		companyAPI.On("CreateCompany", ctx, "Fresh Wheels").Return(&domain.RentalCompany{ID: "c2", Name: "Fresh Wheels"}, nil)
		api.On("CreateBooking", ctx, mock.Anything).Return(&domain.Booking{ID: "b1"}, nil)

		_, err := svc.CreateBooking(ctx, &domain.Booking{
			RentalCompany: "Fresh Wheels",
			Total:         "100.00",
		}, "Alex Agent")
		require.NoError(t, err)
		companyAPI.AssertCalled(t, "CreateCompany", ctx, "Fresh Wheels")
	})

	t.Run("CompanySurvivesFailedSave", func(t *testing.T) {
		api, companyAPI, svc, _ := newBookingFixture()
		companySvc := NewCompanyService(companyAPI)
		svc = NewBookingService(store.New(api), api, companySvc)
		companyAPI.On("ListCompanies", ctx).Return([]domain.RentalCompany{}, nil)
		companyAPI.On("CreateCompany", ctx, "Fresh Wheels").Return(&domain.RentalCompany{ID: "c2", Name: "Fresh Wheels"}, nil).Once()
		api.On("CreateBooking", ctx, mock.Anything).Return(nil, &domain.APIError{StatusCode: 500, Message: "boom"})

		_, err := svc.CreateBooking(ctx, &domain.Booking{RentalCompany: "Fresh Wheels", Total: "100.00"}, "Alex Agent")
		assert.Error(t, err)

		// No rollback: the registry keeps the company, so a retry does not
		// create it twice.
		company, err := companySvc.EnsureCompany(ctx, "Fresh Wheels")
		require.NoError(t, err)
		assert.Equal(t, "c2", company.ID)
		companyAPI.AssertNumberOfCalls(t, "CreateCompany", 1)
	})

	t.Run("MissingCompanyRejectedLocally", func(t *testing.T) {
		api, companyAPI, svc, _ := newBookingFixture()

		_, err := svc.CreateBooking(ctx, &domain.Booking{Total: "100.00"}, "Alex Agent")
		assert.True(t, domain.IsValidation(err))
		api.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
		companyAPI.AssertNotCalled(t, "ListCompanies", mock.Anything)
	})
}

func TestBookingService_ModifyBooking(t *testing.T) {
	ctx := context.Background()
	resident := &domain.Booking{
		ID:            "b1",
		FullName:      "Jane Customer",
		RentalCompany: "Hertz",
		MCO:           "200.00",
		PickupDate:    "2026-09-01",
		Status:        domain.BookingStatusBooked,
	}

	t.Run("AppendsFeeRecomputesMCOAndRecordsTimeline", func(t *testing.T) {
		api, companyAPI, svc, _ := newBookingFixture()
		api.On("GetBooking", ctx, "b1").Return(resident.Clone(), nil)
		companyAPI.On("ListCompanies", ctx).Return([]domain.RentalCompany{{ID: "c1", Name: "Hertz"}}, nil)

		var submitted *domain.Booking
		api.On("UpdateBooking", ctx, "b1", mock.Anything).Run(func(args mock.Arguments) {
			submitted = args.Get(2).(*domain.Booking)
		}).Return(&domain.Booking{ID: "b1", MCO: "225.00", Status: domain.BookingStatusModified}, nil)

		updates := []FieldUpdate{{Field: "pickupDate", NewValue: "2026-09-03"}}
		saved, err := svc.ModifyBooking(ctx, "b1", updates, "25.00", "Alex Agent")
		require.NoError(t, err)
		assert.Equal(t, "225.00", saved.MCO)

		require.NotNil(t, submitted)
		assert.Equal(t, "225.00", submitted.MCO)
		assert.Equal(t, "2026-09-03", submitted.PickupDate)
		assert.Equal(t, domain.BookingStatusModified, submitted.Status)
		assert.Equal(t, "Alex Agent", submitted.SalesAgent)

		require.Len(t, submitted.ModificationFees, 1)
		assert.Equal(t, "25.00", submitted.ModificationFees[0].Charge)

		require.Len(t, submitted.Timeline, 1)
		entry := submitted.Timeline[0]
		assert.Equal(t, "Updated 1 field(s)", entry.Message)
		require.Len(t, entry.Changes, 1)
		assert.Equal(t, domain.TimelineChange{
			Field:    "pickupDate",
			OldValue: "2026-09-01",
			NewValue: "2026-09-03",
		}, entry.Changes[0])
	})

	t.Run("ZeroUpdatesRejectedWithoutNetwork", func(t *testing.T) {
		api, _, svc, _ := newBookingFixture()

		_, err := svc.ModifyBooking(ctx, "b1", nil, "25.00", "Alex Agent")
		assert.True(t, domain.IsValidation(err))
		api.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
		api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		api, _, svc, _ := newBookingFixture()
		api.On("GetBooking", ctx, "b1").Return(resident.Clone(), nil)

		_, err := svc.ModifyBooking(ctx, "b1", []FieldUpdate{{Field: "status", NewValue: "CANCELLED"}}, "25.00", "Alex Agent")
		assert.True(t, domain.IsValidation(err))
		api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BlankFeeRejected", func(t *testing.T) {
		api, _, svc, _ := newBookingFixture()
		api.On("GetBooking", ctx, "b1").Return(resident.Clone(), nil)

		_, err := svc.ModifyBooking(ctx, "b1", []FieldUpdate{{Field: "phone", NewValue: "555"}}, " ", "Alex Agent")
		assert.True(t, domain.IsValidation(err))
		api.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("ExistingCustomerUsesResidentMCO", func(t *testing.T) {
		api, _, svc, bookingStore := newBookingFixture()
		api.On("GetBooking", ctx, "b1").Return(&domain.Booking{ID: "b1", MCO: "225.00"}, nil)

		var sent *domain.CancellationRequest
		api.On("CancelBooking", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*domain.CancellationRequest)
		}).Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled, MCO: "50.00", RefundAmount: "175.00"}, nil)

		result, err := svc.CancelBooking(ctx, CancelInput{
			BookingID:       "b1",
			Email:           "jane@x.com",
			CancellationFee: "50.00",
			AgentName:       "Alex Agent",
		})
		require.NoError(t, err)
		assert.Equal(t, "175.00", result.RefundAmount)
		assert.Equal(t, "50.00", result.NewMCO)

		require.NotNil(t, sent)
		assert.Equal(t, domain.CustomerTypeExisting, sent.CustomerType)
		assert.Equal(t, "175.00", sent.RefundAmount)
		assert.Equal(t, "50.00", sent.MCO)

		// The server's record replaced the store's copy.
		current := bookingStore.Current()
		require.NotNil(t, current)
		assert.Equal(t, domain.BookingStatusCancelled, current.Status)
	})

	t.Run("NewCustomerUsesSuppliedMCO", func(t *testing.T) {
		api, _, svc, _ := newBookingFixture()

		var sent *domain.CancellationRequest
		api.On("CancelBooking", ctx, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(*domain.CancellationRequest)
		}).Return(nil, nil)

		result, err := svc.CancelBooking(ctx, CancelInput{
			FullName:        "Walk In",
			Email:           "walkin@x.com",
			PriorMCO:        "80.00",
			CancellationFee: "100.00",
			AgentName:       "Alex Agent",
		})
		require.NoError(t, err)
		assert.Equal(t, "0.00", result.RefundAmount)
		assert.Equal(t, "100.00", result.NewMCO)

		require.NotNil(t, sent)
		assert.Equal(t, domain.CustomerTypeNew, sent.CustomerType)
		assert.Equal(t, "Walk In", sent.FullName)
	})

	t.Run("MissingFeeRejectedLocally", func(t *testing.T) {
		api, _, svc, _ := newBookingFixture()

		_, err := svc.CancelBooking(ctx, CancelInput{Email: "jane@x.com"})
		assert.True(t, domain.IsValidation(err))
		api.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
	})
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctx := context.Background()
	api, _, svc, _ := newBookingFixture()
	api.On("DeleteBooking", ctx, "b1").Return(nil)

	id, err := svc.DeleteBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", id)
}
