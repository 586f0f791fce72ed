package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

// UseCase use case для создания бронирования помещения
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	approvalRepo    ApprovalRepository
	publisher       EventPublisher
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	approvalRepo ApprovalRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		approvalRepo:    approvalRepo,
		publisher:       publisher,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и запись выполняются в сериализуемой транзакции,
// чтобы две конкурирующие заявки на один слот не прошли обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: facility=%d, date=%s, time=%s-%s, user=%d",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.CreatedBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем помещение
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateReservation: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateReservation: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	var (
		result          *domain.Reservation
		approvalRequest *domain.ApprovalRequest
	)

	// 3. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем подтверждённые бронирования на эту дату с блокировкой
		// (FOR UPDATE). Заявки в статусе pending_approval слот не держат.
		filter := domain.ReservationFilter{
			FacilityID:    req.FacilityID,
			Date:          ptr.Ptr(req.Date),
			ConfirmedOnly: true,
		}

		existing, err := uc.reservationRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 3.2. Проверяем пересечение интервалов. Границы полуоткрытые:
		// встык (end == start) - не конфликт.
		for _, r := range existing {
			if r.Overlaps(req.StartTime, req.EndTime) {
				uc.logger.Warn("CreateReservation: conflict with reservation id=%d (%s, %s-%s)",
					r.ID, r.EventTitle, r.StartTime, r.EndTime)
				return &ConflictError{
					EventTitle: r.EventTitle,
					StartTime:  r.StartTime,
					EndTime:    r.EndTime,
				}
			}
		}

		// 3.3. Помещение с обязательным согласованием -> pending_approval
		// + запрос в очередь согласования. Иначе сразу confirmed.
		status := domain.ReservationConfirmed
		if facility.RequiresApproval {
			status = domain.ReservationPendingApproval
		}

		reservation := &domain.Reservation{
			FacilityID: req.FacilityID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			EventTitle: req.EventTitle,
			Status:     status,
			CreatedBy:  req.CreatedBy,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		if facility.RequiresApproval {
			approval := &domain.ApprovalRequest{
				Type:          domain.RequestTypeRoom,
				Title:         req.EventTitle,
				Description:   fmt.Sprintf("%s, %s %s-%s", facility.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime),
				Priority:      domain.PriorityNormal,
				RequestedBy:   req.CreatedBy,
				Status:        domain.ApprovalPending,
				ReservationID: ptr.Ptr(created.ID),
			}

			createdApproval, err := uc.approvalRepo.Create(txCtx, approval)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create approval request: %v", err)
				return fmt.Errorf("%w: failed to create approval request: %v", ErrInternal, err)
			}
			approvalRequest = createdApproval
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%d status=%s", result.ID, result.Status)

	// 4. Подтверждённое бронирование - публикуем событие. Ошибка публикации
	// не откатывает бронирование: уведомления вторичны.
	if result.IsConfirmed() {
		event := queue.ReservationConfirmedEvent{
			EventID:       uuid.NewString(),
			ReservationID: result.ID,
			FacilityID:    facility.ID,
			FacilityName:  facility.Name,
			Date:          result.Date.Format(domain.DateFormat),
			StartTime:     string(result.StartTime),
			EndTime:       string(result.EndTime),
			EventTitle:    result.EventTitle,
			CreatedBy:     result.CreatedBy,
			ConfirmedAt:   uc.timeProvider.Now().UTC().Format(domain.TimestampFormat),
		}
		if err := uc.publisher.PublishReservationConfirmed(ctx, event); err != nil {
			uc.logger.Warn("CreateReservation: failed to publish confirmation event for id=%d: %v", result.ID, err)
		}
	}

	response := &Response{
		ID:         result.ID,
		FacilityID: result.FacilityID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		EventTitle: result.EventTitle,
		Status:     string(result.Status),
		CreatedBy:  result.CreatedBy,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}
	if approvalRequest != nil {
		response.ApprovalRequestID = ptr.Ptr(approvalRequest.ID)
	}

	return response, nil
}
