package list_approvals

import (
	"errors"
	"net/http"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/service/approvals"
	"github.com/faithworks/FWS-ReservationService/internal/service/approvals/models"
)

const (
	msgInvalidFilter = "некорректный фильтр очереди согласования"
)

type Handler struct {
	service ApprovalService
	logger  Logger
}

func NewHandler(service ApprovalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/approvals?status=&type=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListApprovalsRequest{}

	query := r.URL.Query()
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if requestType := query.Get("type"); requestType != "" {
		req.Type = &requestType
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, approvals.ErrInvalidInput):
			h.logger.Warn("GET /approvals - invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /approvals - failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
