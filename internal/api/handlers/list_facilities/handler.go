package list_facilities

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

const (
	msgInvalidMinCapacity = "некорректный параметр minCapacity"
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

// Handle GET /api/v1/facilities?building=&minCapacity=&amenity=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListFacilitiesRequest{}

	query := r.URL.Query()
	if building := query.Get("building"); building != "" {
		req.Building = &building
	}
	if amenity := query.Get("amenity"); amenity != "" {
		req.Amenity = &amenity
	}
	if raw := query.Get("minCapacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /facilities - invalid minCapacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)
			return
		}
		req.MinCapacity = &minCapacity
	}

	result, err := h.service.ListFacilities(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /facilities - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)

		default:
			h.logger.Error("GET /facilities - failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
