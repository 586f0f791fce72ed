package get_booked_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

// UseCase use case расчёта занятости помещения на дату
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		logger:          logger,
	}
}

// Execute возвращает занятые интервалы помещения на дату.
// Учитываются только подтверждённые бронирования: заявки в статусе
// pending_approval слот не держат и в календаре занятости не видны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedSlots: facility=%d, date=%s", req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookedSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем помещение
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetBookedSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetBookedSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Загружаем подтверждённые бронирования на дату.
	// Репозиторий возвращает их по возрастанию start_time.
	filter := domain.ReservationFilter{
		FacilityID:    req.FacilityID,
		Date:          ptr.Ptr(req.Date),
		ConfirmedOnly: true,
	}

	reservations, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	slots := make([]Slot, 0, len(reservations))
	for _, r := range reservations {
		booked := domain.BookedSlot{
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			EventTitle: r.EventTitle,
		}
		slots = append(slots, Slot{
			StartTime:       booked.StartTime,
			EndTime:         booked.EndTime,
			EventTitle:      booked.EventTitle,
			DurationMinutes: booked.DurationMinutes(),
		})
	}

	uc.logger.Info("GetBookedSlots: facility=%d has %d booked slots on %s",
		req.FacilityID, len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
