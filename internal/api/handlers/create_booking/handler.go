package create_booking

import (
	"errors"
	"net/http"

	"github.com/housnkuh/booking-service/internal/api/handlers"
	"github.com/housnkuh/booking-service/internal/api/middleware"
	createBooking "github.com/housnkuh/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "ungültiger Anfrageinhalt"
	msgInvalidStartDate     = "ungültiges Startdatum, erwartet JJJJ-MM-TT"
	msgVendorNotFound       = "Direktvermarkter nicht gefunden"
	msgUnknownUnit          = "unbekannte Verkaufsfläche in der Auswahl"
	msgUnknownAddon         = "unbekanntes Zusatzpaket in der Auswahl"
	msgAddonRequiresPremium = "Zusatzpaket erfordert das Premium-Provisionsmodell"
	msgNoUnitsSelected      = "mindestens eine Verkaufsfläche muss ausgewählt sein"
	msgInvalidDuration      = "ungültige Mietdauer"
	msgInvalidSelection     = "ungültige Paketauswahl"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "nicht authentifiziert")
		return
	}

	var req BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid start date from user=%d: %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidStartDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrVendorNotFound):
			h.logger.Warn("POST /bookings - Vendor %d not found", userID)
			handlers.RespondNotFound(w, msgVendorNotFound)
		case errors.Is(err, createBooking.ErrUnknownUnit):
			h.logger.Warn("POST /bookings - Unknown unit for vendor=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgUnknownUnit)
		case errors.Is(err, createBooking.ErrUnknownAddon):
			h.logger.Warn("POST /bookings - Unknown addon for vendor=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgUnknownAddon)
		case errors.Is(err, createBooking.ErrAddonRequiresPremium):
			h.logger.Warn("POST /bookings - Premium-gated addon for vendor=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgAddonRequiresPremium)
		case errors.Is(err, createBooking.ErrNoUnitsSelected):
			h.logger.Warn("POST /bookings - Empty selection from vendor=%d", userID)
			handlers.RespondBadRequest(w, msgNoUnitsSelected)
		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration from vendor=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input from vendor=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)
		default:
			h.logger.Error("POST /bookings - Failed to create booking for vendor=%d: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created booking id=%d for vendor=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
