package create_booking

import "errors"

var (
	// ErrVendorNotFound is returned when the vendor does not exist
	ErrVendorNotFound = errors.New("create_booking: vendor not found")

	// ErrUnknownUnit is returned when the selection references a rental unit
	// missing from the catalogue. Unlike the quote path, a new booking must
	// reference the current catalogue.
	ErrUnknownUnit = errors.New("create_booking: unknown rental unit")

	// ErrUnknownAddon is returned when the selection references an addon
	// missing from the catalogue
	ErrUnknownAddon = errors.New("create_booking: unknown addon")

	// ErrAddonRequiresPremium is returned when a premium-gated addon is
	// selected with the basic provision model
	ErrAddonRequiresPremium = errors.New("create_booking: addon requires premium provision")

	// ErrNoUnitsSelected is returned when the selection has no units
	ErrNoUnitsSelected = errors.New("create_booking: no rental units selected")

	// ErrInvalidDuration is returned for a rental duration outside the
	// allowed range
	ErrInvalidDuration = errors.New("create_booking: invalid rental duration")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
