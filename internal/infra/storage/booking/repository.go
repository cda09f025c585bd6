package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/pkg/dbmetrics"
	"github.com/housnkuh/booking-service/pkg/psqlbuilder"
)

// Repository is the postgres repository for bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"vendor_id",
	"status",
	"package_data",
	"requested_at",
	"confirmed_at",
	"scheduled_start_date",
	"actual_start_date",
	"is_trial_booking",
	"payment_liable_from",
	"assigned_unit_ids",
	"created_at",
	"updated_at",
}

// Create inserts a new booking. The package snapshot is stored verbatim as
// JSONB; read paths return it unchanged, it is never recomputed.
//
// If the context carries an active transaction (opened by a transaction
// manager), the insert runs inside it.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	packageData, err := json.Marshal(booking.Package)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal snapshot: %v", ErrEncodeSnapshot, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"vendor_id",
			"status",
			"package_data",
			"requested_at",
			"scheduled_start_date",
			"is_trial_booking",
			"payment_liable_from",
			"assigned_unit_ids",
		).
		Values(
			booking.VendorID,
			booking.Status,
			packageData,
			booking.RequestedAt,
			booking.ScheduledStartDate,
			booking.IsTrialBooking,
			booking.PaymentLiableFrom,
			pq.StringArray(booking.AssignedUnitIDs),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID fetches a booking by id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByVendor fetches a vendor's bookings, optionally filtered by status,
// newest first
func (r *Repository) GetByVendor(ctx context.Context, filter domain.VendorBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"vendor_id": filter.VendorID}).
		OrderBy("requested_at DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVendor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// StatusUpdate carries the fields written together with a status transition
type StatusUpdate struct {
	Status          domain.BookingStatus
	ConfirmedAt     *sql.NullTime
	ActualStartDate *sql.NullTime
	AssignedUnitIDs []string
}

// UpdateStatus writes a status transition. Only the fields belonging to the
// transition are touched; the package snapshot is immutable by design and
// never part of an update.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, update StatusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", update.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.ConfirmedAt != nil {
		updateBuilder = updateBuilder.Set("confirmed_at", *update.ConfirmedAt)
	}
	if update.ActualStartDate != nil {
		updateBuilder = updateBuilder.Set("actual_start_date", *update.ActualStartDate)
	}
	if update.AssignedUnitIDs != nil {
		updateBuilder = updateBuilder.Set("assigned_unit_ids", pq.StringArray(update.AssignedUnitIDs))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking scans a single row via the given scan function
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var packageData []byte
	var confirmedAt, scheduledStart, actualStart, paymentLiableFrom sql.NullTime
	var createdAt, updatedAt sql.NullTime
	var assignedUnitIDs pq.StringArray

	err := scan(
		&booking.ID,
		&booking.VendorID,
		&booking.Status,
		&packageData,
		&booking.RequestedAt,
		&confirmedAt,
		&scheduledStart,
		&actualStart,
		&booking.IsTrialBooking,
		&paymentLiableFrom,
		&assignedUnitIDs,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(packageData, &booking.Package); err != nil {
		return nil, fmt.Errorf("%w: unmarshal snapshot: %v", ErrEncodeSnapshot, err)
	}

	if confirmedAt.Valid {
		booking.ConfirmedAt = &confirmedAt.Time
	}
	if scheduledStart.Valid {
		booking.ScheduledStartDate = &scheduledStart.Time
	}
	if actualStart.Valid {
		booking.ActualStartDate = &actualStart.Time
	}
	if paymentLiableFrom.Valid {
		booking.PaymentLiableFrom = &paymentLiableFrom.Time
	}
	booking.AssignedUnitIDs = assignedUnitIDs
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings scans all rows into a booking slice
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
