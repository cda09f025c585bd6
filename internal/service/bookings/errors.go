package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrVendorNotFound is returned when the vendor does not exist
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrNoTrial is returned when the vendor has no trial window
	ErrNoTrial = errors.New("vendor has no trial period")

	// ErrAccessDenied is returned when the user may not access the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for an unrecognized status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition is returned for a status change that is not
	// allowed by the lifecycle (transitions never go backwards)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
