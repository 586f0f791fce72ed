package list_equipment

import (
	"net/http"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListEquipmentRequest{}

	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.service.ListEquipment(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /equipment - failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
