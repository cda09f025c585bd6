package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/internal/integrations/vendorservice"
	"github.com/housnkuh/booking-service/pkg/ptr"
)

// Test stubs

type stubBookingRepo struct {
	created *domain.Booking
	err     error
}

func (s *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

type stubCatalogueRepo struct {
	units  []domain.RentalUnit
	addons []domain.Addon
}

func (s *stubCatalogueRepo) ListRentalUnits(_ context.Context) ([]domain.RentalUnit, error) {
	return s.units, nil
}

func (s *stubCatalogueRepo) ListAddons(_ context.Context) ([]domain.Addon, error) {
	return s.addons, nil
}

type stubVendorClient struct {
	vendor *vendorservice.Vendor
	err    error
}

func (s *stubVendorClient) GetVendor(_ context.Context, _ int64) (*vendorservice.Vendor, error) {
	return s.vendor, s.err
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fixtureUnits() []domain.RentalUnit {
	return []domain.RentalUnit{
		{ID: "regal-s", Name: "Regal S", MonthlyPrice: 35},
		{ID: "regal-m", Name: "Regal M", MonthlyPrice: 50},
	}
}

func fixtureAddons() []domain.Addon {
	return []domain.Addon{
		{ID: "social-media", Name: "Social Media Paket", MonthlyPrice: 30, BillingPeriod: domain.BillingMonthly},
		{ID: "premium-platzierung", Name: "Premium-Platzierung", MonthlyPrice: 45, BillingPeriod: domain.BillingMonthly, RequiresPremiumProvision: true},
	}
}

func newTestUseCase(bookingRepo *stubBookingRepo, vendor *stubVendorClient) *UseCase {
	uc := NewUseCase(
		bookingRepo,
		&stubCatalogueRepo{units: fixtureUnits(), addons: fixtureAddons()},
		vendor,
		&stubTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &stubTimeProvider{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		VendorID: 7,
		Selection: domain.Selection{
			ProvisionType:        domain.ProvisionBasic,
			UnitCounts:           map[string]int{"regal-s": 2},
			AddonIDs:             []string{"social-media"},
			RentalDurationMonths: 12,
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	vendor := &stubVendorClient{vendor: &vendorservice.Vendor{ID: 7, Name: "Hofladen Müller"}}

	t.Run("creates pending booking with frozen snapshot", func(t *testing.T) {
		repo := &stubBookingRepo{}
		uc := newTestUseCase(repo, vendor)

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, int64(7), resp.VendorID)
		assert.Equal(t, string(domain.StatusPending), resp.Status)
		assert.Equal(t, 100.0, resp.Package.Breakdown.Subtotal) // 2*35 + 30
		assert.Equal(t, 90.0, resp.Package.Breakdown.MonthlyTotal)
		assert.False(t, resp.IsTrialBooking)
		assert.Nil(t, resp.PaymentLiableFrom)

		require.NotNil(t, repo.created)
		assert.Equal(t, domain.StatusPending, repo.created.Status)
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), repo.created.RequestedAt)
	})

	t.Run("trial vendor gets trial booking with liability date", func(t *testing.T) {
		trialEnd := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
		trialVendor := &stubVendorClient{vendor: &vendorservice.Vendor{
			ID:             7,
			TrialStartDate: ptr.Ptr(trialEnd.AddDate(0, 0, -30)),
			TrialEndDate:   &trialEnd,
		}}
		repo := &stubBookingRepo{}
		uc := newTestUseCase(repo, trialVendor)

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.True(t, resp.IsTrialBooking)
		require.NotNil(t, resp.PaymentLiableFrom)
		assert.Equal(t, trialEnd, *resp.PaymentLiableFrom)
	})

	t.Run("vendor not found", func(t *testing.T) {
		missing := &stubVendorClient{err: vendorservice.ErrVendorNotFound}
		uc := newTestUseCase(&stubBookingRepo{}, missing)

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrVendorNotFound)
	})

	t.Run("duplicate addon ids are billed once", func(t *testing.T) {
		repo := &stubBookingRepo{}
		uc := newTestUseCase(repo, vendor)
		req := validRequest()
		req.Selection.AddonIDs = []string{"social-media", "social-media"}

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 30.0, resp.Package.Breakdown.AddonCosts)
	})

	t.Run("nil request", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, vendor)

		_, err := uc.Execute(ctx, nil)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUseCase_Execute_SelectionValidation(t *testing.T) {
	ctx := context.Background()
	vendor := &stubVendorClient{vendor: &vendorservice.Vendor{ID: 7}}

	t.Run("unknown unit is rejected", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, vendor)
		req := validRequest()
		req.Selection.UnitCounts = map[string]int{"ghost-unit": 1}

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("unknown addon is rejected", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, vendor)
		req := validRequest()
		req.Selection.AddonIDs = []string{"ghost-addon"}

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrUnknownAddon)
	})

	t.Run("premium addon with basic provision is rejected", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, vendor)
		req := validRequest()
		req.Selection.AddonIDs = []string{"premium-platzierung"}

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrAddonRequiresPremium)
	})

	t.Run("premium addon with premium provision is accepted", func(t *testing.T) {
		uc := newTestUseCase(&stubBookingRepo{}, vendor)
		req := validRequest()
		req.Selection.ProvisionType = domain.ProvisionPremium
		req.Selection.AddonIDs = []string{"premium-platzierung"}

		resp, err := uc.Execute(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 45.0, resp.Package.Breakdown.AddonCosts)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"valid", func(*Request) {}, nil},
		{"zero vendor id", func(r *Request) { r.VendorID = 0 }, ErrInvalidInput},
		{"unknown provision", func(r *Request) { r.Selection.ProvisionType = "platinum" }, ErrInvalidInput},
		{"duration too short", func(r *Request) { r.Selection.RentalDurationMonths = 0 }, ErrInvalidDuration},
		{"duration too long", func(r *Request) { r.Selection.RentalDurationMonths = 25 }, ErrInvalidDuration},
		{"negative count", func(r *Request) { r.Selection.UnitCounts["regal-s"] = -1 }, ErrInvalidInput},
		{"count above maximum", func(r *Request) { r.Selection.UnitCounts["regal-s"] = 51 }, ErrInvalidInput},
		{"no units", func(r *Request) { r.Selection.UnitCounts = map[string]int{} }, ErrNoUnitsSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDedupeAddonIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, dedupeAddonIDs([]string{"a", "b", "a", "b", "a"}))
	assert.Equal(t, []string{"a"}, dedupeAddonIDs([]string{"a"}))
	assert.Empty(t, dedupeAddonIDs(nil))
}
