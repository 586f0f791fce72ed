package get_equipment_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog"
)

const (
	msgInvalidEquipmentID = "некорректный идентификатор инвентаря"
	msgNotFound           = "позиция инвентаря не найдена"
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

// Handle GET /api/v1/equipment/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /equipment/{id} - invalid equipment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		return
	}

	item, err := h.service.GetEquipmentItem(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id} - not found: id=%d", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /equipment/{id} - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)

		default:
			h.logger.Error("GET /equipment/{id} - failed: id=%d, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}
