package get_booking_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/housnkuh/booking-service/internal/api/handlers"
	"github.com/housnkuh/booking-service/internal/api/middleware"
	"github.com/housnkuh/booking-service/internal/service/bookings"
)

const (
	msgInvalidVendorID = "ungültige Direktvermarkter-ID"
	msgAccessDenied    = "kein Zugriff auf diese Buchungen"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vendors/{vendorId}/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "nicht authentifiziert")
		return
	}

	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("GET /vendors/{vendorId}/bookings/stats - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	counts, err := h.service.GetStatusCounts(r.Context(), vendorID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /vendors/%d/bookings/stats - Failed to aggregate: %v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, counts)
}
