package get_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog"
)

const (
	msgInvalidFacilityID = "некорректный идентификатор помещения"
	msgNotFound          = "помещение не найдено"
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

// Handle GET /api/v1/facilities/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id} - invalid facility id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	facility, err := h.service.GetFacility(r.Context(), facilityID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id} - not found: id=%d", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id} - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id} - failed: id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, facility)
}
