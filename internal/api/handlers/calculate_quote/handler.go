package calculate_quote

import (
	"errors"
	"net/http"

	"github.com/housnkuh/booking-service/internal/api/handlers"
	calculateQuote "github.com/housnkuh/booking-service/internal/usecase/calculate_quote"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidSelection   = "ungültige Paketauswahl"
)

type Handler struct {
	useCase CalculateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CalculateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculateQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)
		default:
			h.logger.Error("POST /quotes - Failed to calculate quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
