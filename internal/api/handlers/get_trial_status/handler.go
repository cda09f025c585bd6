package get_trial_status

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
	msgVendorNotFound  = "Direktvermarkter nicht gefunden"
	msgNoTrial         = "kein Probemonat für diesen Direktvermarkter"
	msgAccessDenied    = "kein Zugriff auf diesen Probemonat"
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

// Handle GET /api/v1/vendors/{vendorId}/trial
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "nicht authentifiziert")
		return
	}

	vendorID, err := strconv.ParseInt(mux.Vars(r)["vendorId"], 10, 64)
	if err != nil || vendorID <= 0 {
		h.logger.Warn("GET /vendors/{vendorId}/trial - Invalid vendor id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVendorID)
		return
	}

	status, err := h.service.GetTrialStatus(r.Context(), vendorID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrVendorNotFound):
			handlers.RespondNotFound(w, msgVendorNotFound)
		case errors.Is(err, bookings.ErrNoTrial):
			handlers.RespondNotFound(w, msgNoTrial)
		default:
			h.logger.Error("GET /vendors/%d/trial - Failed to derive trial status: %v", vendorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
