package catalogue

import "errors"

var (
	// ErrUnitNotFound is returned when a rental unit does not exist
	ErrUnitNotFound = errors.New("catalogue.repository: rental unit not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("catalogue.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("catalogue.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalogue.repository: failed to scan row")
)
