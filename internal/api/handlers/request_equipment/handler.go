package request_equipment

import (
	"errors"
	"net/http"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/api/middleware"
	requestEquipment "github.com/faithworks/FWS-ReservationService/internal/usecase/request_equipment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgEquipmentNotFound    = "позиция инвентаря не найдена"
	msgInsufficientQuantity = "недостаточно доступного инвентаря"
	msgDuplicateLine        = "в корзине две позиции одного предмета"
	msgUnauthorized         = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase RequestEquipmentUseCase
	logger  Logger
}

func NewHandler(useCase RequestEquipmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/equipment/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /equipment/requests - missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req RequestEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /equipment/requests - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var insufficient *requestEquipment.InsufficientQuantityError

		switch {
		case errors.As(err, &insufficient):
			h.logger.Warn("POST /equipment/requests - insufficient quantity: equipment=%d, requested=%d, available=%d",
				insufficient.EquipmentID, insufficient.Requested, insufficient.Available)
			handlers.RespondUnprocessable(w, InsufficientQuantityResponse{
				Error:       msgInsufficientQuantity,
				EquipmentID: insufficient.EquipmentID,
				Requested:   insufficient.Requested,
				Available:   insufficient.Available,
			})

		case errors.Is(err, requestEquipment.ErrEquipmentNotFound):
			h.logger.Warn("POST /equipment/requests - equipment not found: %v", err)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, requestEquipment.ErrDuplicateLine):
			h.logger.Warn("POST /equipment/requests - duplicate line: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateLine)

		case errors.Is(err, requestEquipment.ErrInvalidInput):
			h.logger.Warn("POST /equipment/requests - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /equipment/requests - failed: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /equipment/requests - request created: id=%d, status=%s, lines=%d",
		result.RequestID, result.Status, len(result.Allocations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
