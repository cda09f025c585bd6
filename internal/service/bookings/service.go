package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
	storage "github.com/housnkuh/booking-service/internal/infra/storage/booking"
	vendorClient "github.com/housnkuh/booking-service/internal/integrations/vendorservice"
	"github.com/housnkuh/booking-service/internal/service/bookings/models"
)

// Service handles booking reads and lifecycle updates
type Service struct {
	bookingRepo  BookingRepository
	vendorClient VendorServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new bookings service
func NewService(
	bookingRepo BookingRepository,
	vendorClient VendorServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		vendorClient: vendorClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches a booking. Vendors can only see their own bookings.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.VendorID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.warnOnUnknownStatus(booking)

	return models.FromDomainBooking(booking), nil
}

// GetVendorBookings fetches a vendor's booking history, optionally filtered
// by status
func (s *Service) GetVendorBookings(ctx context.Context, req *models.GetVendorBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVendorBookings: fetching bookings for vendor=%d, status=%v", req.VendorID, req.Status)

	if req.UserID != req.VendorID {
		s.logger.Warn("GetVendorBookings: access denied for user=%d to vendor=%d", req.UserID, req.VendorID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVendorBookings: invalid status=%v for vendor=%d", req.Status, req.VendorID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByVendor(ctx, filter)
	if err != nil {
		s.logger.Error("GetVendorBookings: repository error for vendor=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: GetVendorBookings - repository error: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		s.warnOnUnknownStatus(b)
	}

	s.logger.Info("GetVendorBookings: successfully fetched %d bookings for vendor=%d", len(bookings), req.VendorID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStatusCounts aggregates the vendor's bookings per status for the
// filter-tab badges. Single pass over the list.
func (s *Service) GetStatusCounts(ctx context.Context, vendorID int64, userID int64) (*models.StatusCountsResponse, error) {
	s.logger.Info("GetStatusCounts: aggregating bookings for vendor=%d", vendorID)

	if userID != vendorID {
		s.logger.Warn("GetStatusCounts: access denied for user=%d to vendor=%d", userID, vendorID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByVendor(ctx, domain.VendorBookingsFilter{VendorID: vendorID})
	if err != nil {
		s.logger.Error("GetStatusCounts: repository error for vendor=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetStatusCounts - repository error: %v", ErrInternal, err)
	}

	counts := domain.AggregateStatusCounts(bookings)
	return models.FromDomainStatusCounts(counts), nil
}

// UpdateStatus performs a lifecycle transition on a booking. Transitions are
// strictly forward (pending -> confirmed -> active -> completed); anything
// else is rejected. Confirming writes ConfirmedAt and the assigned units,
// activating writes the actual start date.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	now := s.timeProvider.Now()
	update := storage.StatusUpdate{Status: newStatus}

	switch newStatus {
	case domain.StatusConfirmed:
		update.ConfirmedAt = &sql.NullTime{Time: now, Valid: true}
		if len(req.AssignedUnitIDs) > 0 {
			update.AssignedUnitIDs = req.AssignedUnitIDs
		}
	case domain.StatusActive:
		update.ActualStartDate = &sql.NullTime{Time: now, Valid: true}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, update); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// GetTrialStatus derives the vendor's current trial state from the vendor
// record and the current clock reading
func (s *Service) GetTrialStatus(ctx context.Context, vendorID int64, userID int64) (*models.TrialStatusResponse, error) {
	s.logger.Info("GetTrialStatus: deriving trial state for vendor=%d", vendorID)

	if userID != vendorID {
		s.logger.Warn("GetTrialStatus: access denied for user=%d to vendor=%d", userID, vendorID)
		return nil, ErrAccessDenied
	}

	vendor, err := s.vendorClient.GetVendorWithGracefulDegradation(ctx, vendorID)
	if err != nil {
		if errors.Is(err, vendorClient.ErrVendorNotFound) {
			return nil, ErrVendorNotFound
		}
		s.logger.Error("GetTrialStatus: vendor service error for vendor=%d: %v", vendorID, err)
		return nil, fmt.Errorf("%w: GetTrialStatus - vendor service error: %v", ErrInternal, err)
	}

	if !vendor.HasTrial() {
		s.logger.Warn("GetTrialStatus: vendor=%d has no trial window", vendorID)
		return nil, ErrNoTrial
	}

	window := domain.TrialWindow{
		StartDate: *vendor.TrialStartDate,
		EndDate:   *vendor.TrialEndDate,
	}

	status := domain.DeriveTrialState(s.timeProvider.Now(), window, vendor.TrialCancelled)

	s.logger.Info("GetTrialStatus: vendor=%d state=%s daysRemaining=%d", vendorID, status.State, status.DaysRemaining)
	return models.FromDomainTrialStatus(status, window), nil
}

// warnOnUnknownStatus is the logging side channel of the label fallback:
// rendering never fails on an unexpected status, but it must be noticed
func (s *Service) warnOnUnknownStatus(b *domain.Booking) {
	if _, ok := domain.DeriveStatusLabel(b.Status); !ok {
		s.logger.Warn("booking id=%d has unrecognized status %q, rendering fallback label", b.ID, b.Status)
	}
}
