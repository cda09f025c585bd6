package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
	vendorClient "github.com/housnkuh/booking-service/internal/integrations/vendorservice"
	"github.com/housnkuh/booking-service/internal/pricing"
)

// UseCase submits a booking request: it freezes the priced package into a
// snapshot and creates the booking in pending state
type UseCase struct {
	bookingRepo   BookingRepository
	catalogueRepo CatalogueRepository
	vendorClient  VendorServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates a new booking submission usecase
func NewUseCase(
	bookingRepo BookingRepository,
	catalogueRepo CatalogueRepository,
	vendorClient VendorServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogueRepo: catalogueRepo,
		vendorClient:  vendorClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute submits the booking. The snapshot is computed from the catalogue
// as it is inside the transaction and stored verbatim; it is never
// recomputed later, so the booking's prices stay what the vendor saw.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	uc.logger.Info("CreateBooking: vendor=%d, provision=%s, duration=%d, units=%d, addons=%d",
		req.VendorID, req.Selection.ProvisionType, req.Selection.RentalDurationMonths,
		len(req.Selection.UnitCounts), len(req.Selection.AddonIDs))

	// 1. Validate the request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	sel := req.Selection
	sel.AddonIDs = dedupeAddonIDs(sel.AddonIDs)

	// 2. Current time
	now := uc.timeProvider.Now()

	// 3. Fetch the vendor record; the trial window lives on the account
	vendor, err := uc.vendorClient.GetVendor(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, vendorClient.ErrVendorNotFound) {
			uc.logger.Warn("CreateBooking: vendor id=%d not found", req.VendorID)
			return nil, ErrVendorNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vendor id=%d: %v", req.VendorID, err)
		return nil, fmt.Errorf("%w: failed to get vendor: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Catalogue read, snapshot and insert run in one serializable
	// transaction so the frozen prices match the catalogue at the moment of
	// submission
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		units, err := uc.catalogueRepo.ListRentalUnits(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list rental units: %v", err)
			return fmt.Errorf("%w: failed to list rental units: %v", ErrInternal, err)
		}

		addons, err := uc.catalogueRepo.ListAddons(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list addons: %v", err)
			return fmt.Errorf("%w: failed to list addons: %v", ErrInternal, err)
		}

		// 4.1. New bookings must reference the current catalogue
		if err := validateSelectionAgainstCatalogue(sel, units, addons); err != nil {
			uc.logger.Warn("CreateBooking: selection validation failed: %v", err)
			return err
		}

		// 4.2. Freeze the package
		snapshot := pricing.Snapshot(units, addons, sel)

		booking := &domain.Booking{
			VendorID:           req.VendorID,
			Status:             domain.StatusPending,
			Package:            snapshot,
			RequestedAt:        now,
			ScheduledStartDate: req.ScheduledStartDate,
		}

		if vendor.HasTrial() {
			booking.IsTrialBooking = true
			// The booking becomes payment-liable when the 30-day trial ends
			booking.PaymentLiableFrom = vendor.TrialEndDate
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: repository error: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for vendor=%d, monthlyTotal=%.2f, trial=%t",
		result.ID, result.VendorID, result.Package.Breakdown.MonthlyTotal, result.IsTrialBooking)

	return &Response{
		ID:                 result.ID,
		VendorID:           result.VendorID,
		Status:             string(result.Status),
		Package:            result.Package,
		RequestedAt:        result.RequestedAt,
		ScheduledStartDate: result.ScheduledStartDate,
		IsTrialBooking:     result.IsTrialBooking,
		PaymentLiableFrom:  result.PaymentLiableFrom,
		CreatedAt:          result.CreatedAt,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}
