package get_catalogue

import (
	"net/http"

	"github.com/housnkuh/booking-service/internal/api/handlers"
	"github.com/housnkuh/booking-service/internal/domain"
)

type Handler struct {
	service CatalogueService
	logger  Logger
}

func NewHandler(service CatalogueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalogue?provisionType=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	provision := domain.ProvisionType(r.URL.Query().Get("provisionType"))

	catalogue, err := h.service.GetCatalogue(r.Context(), provision)
	if err != nil {
		h.logger.Error("GET /catalogue - Failed to load catalogue: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, catalogue)
}
