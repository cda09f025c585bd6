package booking

import "github.com/housnkuh/booking-service/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces, they cover *sql.DB, *sql.Tx and
// the metric-wrapped variants
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
