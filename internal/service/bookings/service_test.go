package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housnkuh/booking-service/internal/domain"
	storage "github.com/housnkuh/booking-service/internal/infra/storage/booking"
	"github.com/housnkuh/booking-service/internal/integrations/vendorservice"
	"github.com/housnkuh/booking-service/internal/service/bookings/models"
	"github.com/housnkuh/booking-service/pkg/ptr"
)

// Test stubs

type stubBookingRepo struct {
	bookings   map[int64]*domain.Booking
	byVendor   []*domain.Booking
	lastUpdate *storage.StatusUpdate
	updateErr  error
}

func (s *stubBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, found := s.bookings[id]
	if !found {
		return nil, storage.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubBookingRepo) GetByVendor(_ context.Context, filter domain.VendorBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(s.byVendor))
	for _, b := range s.byVendor {
		if b.VendorID != filter.VendorID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id int64, update storage.StatusUpdate) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, found := s.bookings[id]; !found {
		return storage.ErrBookingNotFound
	}
	s.lastUpdate = &update
	return nil
}

type stubVendorClient struct {
	vendor *vendorservice.Vendor
	err    error
}

func (s *stubVendorClient) GetVendor(_ context.Context, _ int64) (*vendorservice.Vendor, error) {
	return s.vendor, s.err
}

func (s *stubVendorClient) GetVendorWithGracefulDegradation(_ context.Context, _ int64) (*vendorservice.Vendor, error) {
	return s.vendor, s.err
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

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *stubBookingRepo, client *stubVendorClient) *Service {
	svc := NewService(repo, client, nopLogger{})
	svc.timeProvider = &stubTimeProvider{now: testNow}
	return svc
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := &stubBookingRepo{bookings: map[int64]*domain.Booking{
		1: {ID: 1, VendorID: 7, Status: domain.StatusPending, RequestedAt: testNow},
	}}
	svc := newTestService(repo, &stubVendorClient{})

	t.Run("owner fetches booking with label", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 1, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "Ausstehend", resp.StatusLabel.Text)
	})

	t.Run("foreign user is denied", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 1, 99)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 404, 7)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetVendorBookings(t *testing.T) {
	ctx := context.Background()
	repo := &stubBookingRepo{byVendor: []*domain.Booking{
		{ID: 1, VendorID: 7, Status: domain.StatusPending},
		{ID: 2, VendorID: 7, Status: domain.StatusActive},
		{ID: 3, VendorID: 8, Status: domain.StatusActive},
	}}
	svc := newTestService(repo, &stubVendorClient{})

	t.Run("lists own bookings", func(t *testing.T) {
		resp, err := svc.GetVendorBookings(ctx, &models.GetVendorBookingsRequest{UserID: 7, VendorID: 7})

		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("status filter narrows the list", func(t *testing.T) {
		resp, err := svc.GetVendorBookings(ctx, &models.GetVendorBookingsRequest{
			UserID: 7, VendorID: 7, Status: ptr.Ptr("active"),
		})

		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(2), resp.Bookings[0].ID)
	})

	t.Run("invalid status filter is rejected", func(t *testing.T) {
		_, err := svc.GetVendorBookings(ctx, &models.GetVendorBookingsRequest{
			UserID: 7, VendorID: 7, Status: ptr.Ptr("archived"),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign vendor list is denied", func(t *testing.T) {
		_, err := svc.GetVendorBookings(ctx, &models.GetVendorBookingsRequest{UserID: 7, VendorID: 8})

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetStatusCounts(t *testing.T) {
	ctx := context.Background()
	repo := &stubBookingRepo{byVendor: []*domain.Booking{
		{ID: 1, VendorID: 7, Status: domain.StatusPending},
		{ID: 2, VendorID: 7, Status: domain.StatusPending},
		{ID: 3, VendorID: 7, Status: domain.StatusConfirmed},
		{ID: 4, VendorID: 7, Status: domain.StatusActive},
		{ID: 5, VendorID: 7, Status: domain.StatusActive},
		{ID: 6, VendorID: 7, Status: domain.StatusCompleted},
	}}
	svc := newTestService(repo, &stubVendorClient{})

	counts, err := svc.GetStatusCounts(ctx, 7, 7)

	require.NoError(t, err)
	assert.Equal(t, &models.StatusCountsResponse{All: 6, Pending: 2, Confirmed: 1, Active: 2, Completed: 1}, counts)
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	newRepo := func(status domain.BookingStatus) *stubBookingRepo {
		return &stubBookingRepo{bookings: map[int64]*domain.Booking{
			1: {ID: 1, VendorID: 7, Status: status},
		}}
	}

	t.Run("confirming writes timestamp and assigned units", func(t *testing.T) {
		repo := newRepo(domain.StatusPending)
		svc := newTestService(repo, &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{
			UserID:          7,
			Status:          "confirmed",
			AssignedUnitIDs: []string{"regal-s-01", "regal-s-02"},
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastUpdate)
		assert.Equal(t, domain.StatusConfirmed, repo.lastUpdate.Status)
		require.NotNil(t, repo.lastUpdate.ConfirmedAt)
		assert.Equal(t, testNow, repo.lastUpdate.ConfirmedAt.Time)
		assert.Equal(t, []string{"regal-s-01", "regal-s-02"}, repo.lastUpdate.AssignedUnitIDs)
	})

	t.Run("activating writes the actual start date", func(t *testing.T) {
		repo := newRepo(domain.StatusConfirmed)
		svc := newTestService(repo, &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: 7, Status: "active"})

		require.NoError(t, err)
		require.NotNil(t, repo.lastUpdate.ActualStartDate)
		assert.Equal(t, testNow, repo.lastUpdate.ActualStartDate.Time)
	})

	t.Run("backward transition is rejected", func(t *testing.T) {
		svc := newTestService(newRepo(domain.StatusActive), &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: 7, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		svc := newTestService(newRepo(domain.StatusPending), &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unrecognized status is rejected", func(t *testing.T) {
		svc := newTestService(newRepo(domain.StatusPending), &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{UserID: 7, Status: "archived"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newTestService(&stubBookingRepo{bookings: map[int64]*domain.Booking{}}, &stubVendorClient{})

		err := svc.UpdateStatus(ctx, 404, &models.UpdateStatusRequest{UserID: 7, Status: "confirmed"})

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_GetTrialStatus(t *testing.T) {
	ctx := context.Background()
	trialEnd := testNow.AddDate(0, 0, 10)
	trialStart := trialEnd.AddDate(0, 0, -30)

	t.Run("active trial", func(t *testing.T) {
		client := &stubVendorClient{vendor: &vendorservice.Vendor{
			ID:             7,
			TrialStartDate: &trialStart,
			TrialEndDate:   &trialEnd,
		}}
		svc := newTestService(&stubBookingRepo{}, client)

		resp, err := svc.GetTrialStatus(ctx, 7, 7)

		require.NoError(t, err)
		assert.Equal(t, "active", resp.State)
		assert.Equal(t, 10, resp.DaysRemaining)
		assert.False(t, resp.ShowWarning)
		assert.False(t, resp.AccessBlocked)
		assert.Equal(t, trialEnd.Format(domain.DateFormat), resp.TrialEndDate)
	})

	t.Run("cancelled trial blocks access", func(t *testing.T) {
		client := &stubVendorClient{vendor: &vendorservice.Vendor{
			ID:             7,
			TrialStartDate: &trialStart,
			TrialEndDate:   &trialEnd,
			TrialCancelled: true,
		}}
		svc := newTestService(&stubBookingRepo{}, client)

		resp, err := svc.GetTrialStatus(ctx, 7, 7)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.State)
		assert.True(t, resp.AccessBlocked)
	})

	t.Run("vendor without trial window", func(t *testing.T) {
		client := &stubVendorClient{vendor: &vendorservice.Vendor{ID: 7}}
		svc := newTestService(&stubBookingRepo{}, client)

		_, err := svc.GetTrialStatus(ctx, 7, 7)

		assert.ErrorIs(t, err, ErrNoTrial)
	})

	t.Run("missing vendor", func(t *testing.T) {
		client := &stubVendorClient{err: vendorservice.ErrVendorNotFound}
		svc := newTestService(&stubBookingRepo{}, client)

		_, err := svc.GetTrialStatus(ctx, 7, 7)

		assert.ErrorIs(t, err, ErrVendorNotFound)
	})

	t.Run("foreign trial is denied", func(t *testing.T) {
		svc := newTestService(&stubBookingRepo{}, &stubVendorClient{})

		_, err := svc.GetTrialStatus(ctx, 7, 99)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
