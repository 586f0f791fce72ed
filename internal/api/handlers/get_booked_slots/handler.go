package get_booked_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/faithworks/FWS-ReservationService/internal/api/handlers"
	"github.com/faithworks/FWS-ReservationService/internal/domain"
	getBookedSlots "github.com/faithworks/FWS-ReservationService/internal/usecase/get_booked_slots"
)

const (
	msgInvalidFacilityID = "некорректный идентификатор помещения"
	msgInvalidDate       = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgFacilityNotFound  = "помещение не найдено"
)

type Handler struct {
	useCase GetBookedSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetBookedSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{id}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - invalid facility id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/availability - invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBookedSlots.Request{
		FacilityID: facilityID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookedSlots.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/availability - facility not found: facility=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getBookedSlots.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/availability - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFacilityID)

		default:
			h.logger.Error("GET /facilities/{id}/availability - failed: facility=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/availability - %d slots for facility=%d", len(result.Slots), facilityID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
