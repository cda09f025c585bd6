package get_trial_status

import (
	"context"

	"github.com/housnkuh/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetTrialStatus(ctx context.Context, vendorID int64, userID int64) (*models.TrialStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
