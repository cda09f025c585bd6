package get_booking_stats

import (
	"context"

	"github.com/housnkuh/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetStatusCounts(ctx context.Context, vendorID int64, userID int64) (*models.StatusCountsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
