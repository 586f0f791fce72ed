package release_allocations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	releaseAllocations "github.com/faithworks/FWS-ReservationService/internal/usecase/release_allocations"
)

const (
	msgInvalidRequestID = "некорректный идентификатор запроса"
	msgRequestNotFound  = "запрос инвентаря не найден"
)

type Handler struct {
	useCase ReleaseAllocationsUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseAllocationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/equipment/requests/{id}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /equipment/requests/{id}/release - invalid request id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &releaseAllocations.Request{RequestID: requestID})
	if err != nil {
		switch {
		case errors.Is(err, releaseAllocations.ErrRequestNotFound):
			h.logger.Warn("PATCH /equipment/requests/{id}/release - not found: id=%d", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, releaseAllocations.ErrInvalidInput):
			h.logger.Warn("PATCH /equipment/requests/{id}/release - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("PATCH /equipment/requests/{id}/release - failed: id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /equipment/requests/{id}/release - released: id=%d, noop=%t",
		result.RequestID, result.AlreadyReleased)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
