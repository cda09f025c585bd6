package catalogue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/housnkuh/booking-service/internal/domain"
	"github.com/housnkuh/booking-service/pkg/dbmetrics"
	"github.com/housnkuh/booking-service/pkg/psqlbuilder"
)

// Repository reads the rental-unit and addon catalogues. The catalogues are
// seeded by operations; this service only reads them.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a new catalogue repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRentalUnits returns all rental units in display order
func (r *Repository) ListRentalUnits(ctx context.Context) ([]domain.RentalUnit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"monthly_price",
		"price_on_request",
		"category",
	).
		From("rental_units").
		OrderBy("sort_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRentalUnits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRentalUnits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	units := make([]domain.RentalUnit, 0)
	for rows.Next() {
		var unit domain.RentalUnit
		var price sql.NullFloat64
		if err := rows.Scan(&unit.ID, &unit.Name, &price, &unit.PriceOnRequest, &unit.Category); err != nil {
			return nil, fmt.Errorf("%w: ListRentalUnits - scan row: %v", ErrScanRow, err)
		}
		unit.MonthlyPrice = price.Float64
		units = append(units, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRentalUnits - rows error: %v", ErrScanRow, err)
	}

	return units, nil
}

// ListAddons returns all addon services in display order
func (r *Repository) ListAddons(ctx context.Context) ([]domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"monthly_price",
		"billing_period",
		"requires_premium_provision",
	).
		From("addons").
		OrderBy("sort_order ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAddons - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddons - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]domain.Addon, 0)
	for rows.Next() {
		var addon domain.Addon
		if err := rows.Scan(&addon.ID, &addon.Name, &addon.MonthlyPrice, &addon.BillingPeriod, &addon.RequiresPremiumProvision); err != nil {
			return nil, fmt.Errorf("%w: ListAddons - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAddons - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}
