package resolve_approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	approvalRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/approval"
	reservationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/reservation"
	identityClient "github.com/faithworks/FWS-ReservationService/internal/integrations/identityservice"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

// UseCase use case резолюции запроса на согласование: машина состояний
// pending -> approved | rejected с фиксацией или отбросом связанного ресурса
type UseCase struct {
	approvalRepo    ApprovalRepository
	reservationRepo ReservationRepository
	allocationRepo  AllocationRepository
	equipmentRepo   EquipmentRepository
	facilityRepo    FacilityRepository
	identityClient  IdentityServiceClient
	publisher       EventPublisher
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	approvalRepo ApprovalRepository,
	reservationRepo ReservationRepository,
	allocationRepo AllocationRepository,
	equipmentRepo EquipmentRepository,
	facilityRepo FacilityRepository,
	identityClient IdentityServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		approvalRepo:    approvalRepo,
		reservationRepo: reservationRepo,
		allocationRepo:  allocationRepo,
		equipmentRepo:   equipmentRepo,
		facilityRepo:    facilityRepo,
		identityClient:  identityClient,
		publisher:       publisher,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет резолюцию запроса. Фиксация ресурса и смена статуса
// идут в одной сериализуемой транзакции: подтверждённое согласование
// без зафиксированного бронирования существовать не должно.
//
// Approve перепроверяет валидность на момент фиксации: за время ожидания
// слот могли занять, и тогда резолюция завершается ConflictAtApproval,
// а не молчаливым двойным бронированием.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveApproval: request=%d, reviewer=%d, action=%s",
		req.ApprovalID, req.ReviewerID, req.Action)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveApproval: validation failed: %v", err)
		return nil, err
	}

	// 2. Читаем запрос (без блокировки) ради типа - он нужен для проверки
	// полномочий ревьюера до открытия транзакции
	approval, err := uc.approvalRepo.GetByID(ctx, req.ApprovalID)
	if err != nil {
		if errors.Is(err, approvalRepo.ErrRequestNotFound) {
			uc.logger.Warn("ResolveApproval: approval request id=%d not found", req.ApprovalID)
			return nil, ErrRequestNotFound
		}
		uc.logger.Error("ResolveApproval: failed to get approval request id=%d: %v", req.ApprovalID, err)
		return nil, fmt.Errorf("%w: failed to get approval request: %v", ErrInternal, err)
	}

	// 3. Проверяем полномочия ревьюера в IdentityService
	if err := uc.identityClient.CanApprove(ctx, req.ReviewerID, string(approval.Type)); err != nil {
		switch {
		case errors.Is(err, identityClient.ErrReviewerNotFound):
			uc.logger.Warn("ResolveApproval: reviewer id=%d not found", req.ReviewerID)
			return nil, ErrReviewerNotFound
		case errors.Is(err, identityClient.ErrNotAuthorized):
			uc.logger.Warn("ResolveApproval: reviewer id=%d not authorized for type=%s", req.ReviewerID, approval.Type)
			return nil, ErrNotAuthorized
		default:
			uc.logger.Error("ResolveApproval: identity check failed for reviewer id=%d: %v", req.ReviewerID, err)
			return nil, fmt.Errorf("%w: identity check failed: %v", ErrInternal, err)
		}
	}

	var (
		resolved             *domain.ApprovalRequest
		confirmedReservation *domain.Reservation
	)

	// 4. Резолюция в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Перечитываем запрос с блокировкой (FOR UPDATE) -
		// конкурирующий ревьюер сериализуется за нами и увидит
		// терминальный статус
		current, err := uc.approvalRepo.GetByID(txCtx, req.ApprovalID)
		if err != nil {
			if errors.Is(err, approvalRepo.ErrRequestNotFound) {
				return ErrRequestNotFound
			}
			uc.logger.Error("ResolveApproval: failed to reload approval request id=%d: %v", req.ApprovalID, err)
			return fmt.Errorf("%w: failed to reload approval request: %v", ErrInternal, err)
		}

		// 4.2. Терминальные состояния неизменяемы
		if current.IsResolved() {
			uc.logger.Warn("ResolveApproval: approval request id=%d already %s", current.ID, current.Status)
			return ErrInvalidStateTransition
		}

		// 4.3. Применяем эффект резолюции к связанному ресурсу.
		// Разбор по типу исчерпывающий: room фиксирует бронирование,
		// equipment - аллокации, event собственного ресурса не несёт.
		if req.Action == ActionApprove {
			switch current.Type {
			case domain.RequestTypeRoom:
				reservation, err := uc.commitReservation(txCtx, current)
				if err != nil {
					return err
				}
				confirmedReservation = reservation
			case domain.RequestTypeEquipment:
				if err := uc.commitAllocations(txCtx, current); err != nil {
					return err
				}
			case domain.RequestTypeEvent:
				// Запись события живёт вне этого сервиса - фиксируется
				// только статус согласования
			default:
				uc.logger.Error("ResolveApproval: unknown request type %q for id=%d", current.Type, current.ID)
				return fmt.Errorf("%w: unknown request type %q", ErrInternal, current.Type)
			}
		} else {
			switch current.Type {
			case domain.RequestTypeRoom:
				if err := uc.discardReservation(txCtx, current); err != nil {
					return err
				}
			case domain.RequestTypeEquipment:
				if err := uc.releaseAllocations(txCtx, current); err != nil {
					return err
				}
			case domain.RequestTypeEvent:
			default:
				uc.logger.Error("ResolveApproval: unknown request type %q for id=%d", current.Type, current.ID)
				return fmt.Errorf("%w: unknown request type %q", ErrInternal, current.Type)
			}
		}

		// 4.4. Фиксируем резолюцию. Статусный guard в репозитории -
		// вторая линия обороны от гонки двух ревьюеров.
		status := domain.ApprovalApproved
		if req.Action == ActionReject {
			status = domain.ApprovalRejected
		}

		if err := uc.approvalRepo.Resolve(txCtx, current.ID, status, req.ReviewerID, req.Comment); err != nil {
			if errors.Is(err, approvalRepo.ErrAlreadyResolved) {
				return ErrInvalidStateTransition
			}
			uc.logger.Error("ResolveApproval: failed to resolve request id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to resolve request: %v", ErrInternal, err)
		}

		// 4.5. Перечитываем финальное состояние для ответа (reviewed_at
		// проставляет БД)
		resolved, err = uc.approvalRepo.GetByID(txCtx, current.ID)
		if err != nil {
			uc.logger.Error("ResolveApproval: failed to reload resolved request id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to reload resolved request: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ResolveApproval: request id=%d resolved as %s by reviewer=%d",
		resolved.ID, resolved.Status, req.ReviewerID)

	// 5. Публикуем события. Ошибки публикации не откатывают резолюцию.
	uc.publishResolutionEvents(ctx, resolved, confirmedReservation)

	return &Response{
		ID:                  resolved.ID,
		Type:                string(resolved.Type),
		Status:              string(resolved.Status),
		ReviewedBy:          req.ReviewerID,
		ReviewedAt:          resolved.ReviewedAt,
		Comments:            resolved.Comments,
		RequestedBy:         resolved.RequestedBy,
		ReservationID:       resolved.ReservationID,
		AllocationRequestID: resolved.AllocationRequestID,
	}, nil
}

// commitReservation фиксирует pending-бронирование, предварительно
// перепроверив конфликты: слот могли занять за время согласования
func (uc *UseCase) commitReservation(ctx context.Context, approval *domain.ApprovalRequest) (*domain.Reservation, error) {
	if approval.ReservationID == nil {
		uc.logger.Error("ResolveApproval: room request id=%d has no reservation reference", approval.ID)
		return nil, fmt.Errorf("%w: room request without reservation reference", ErrInternal)
	}

	reservation, err := uc.reservationRepo.GetByID(ctx, *approval.ReservationID)
	if err != nil {
		uc.logger.Error("ResolveApproval: failed to get reservation id=%d: %v", *approval.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	if !reservation.IsPending() {
		uc.logger.Warn("ResolveApproval: reservation id=%d is %s, not pending", reservation.ID, reservation.Status)
		return nil, ErrInvalidStateTransition
	}

	// Повторный прогон детектора конфликтов по подтверждённым бронированиям
	filter := domain.ReservationFilter{
		FacilityID:    reservation.FacilityID,
		Date:          ptr.Ptr(reservation.Date),
		ConfirmedOnly: true,
	}

	existing, err := uc.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ResolveApproval: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	for _, r := range existing {
		if r.ID == reservation.ID {
			continue
		}
		if r.Overlaps(reservation.StartTime, reservation.EndTime) {
			uc.logger.Warn("ResolveApproval: reservation id=%d conflicts at approval with id=%d (%s)",
				reservation.ID, r.ID, r.EventTitle)
			return nil, &ApprovalConflictError{
				EventTitle: r.EventTitle,
				StartTime:  r.StartTime,
				EndTime:    r.EndTime,
			}
		}
	}

	if err := uc.reservationRepo.UpdateStatus(ctx, reservation.ID, domain.ReservationConfirmed); err != nil {
		uc.logger.Error("ResolveApproval: failed to confirm reservation id=%d: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: failed to confirm reservation: %v", ErrInternal, err)
	}

	reservation.Status = domain.ReservationConfirmed
	return reservation, nil
}

// commitAllocations переводит удерживающие количество аллокации в confirmed.
// Количество было списано при создании запроса, повторная проверка
// доступности не нужна. Фиксируются только pending-запросы: уже
// освобождённый запрос вернул количество в пул, и подтверждать его
// задним числом нельзя - счётчик доступности разойдётся с аллокациями.
func (uc *UseCase) commitAllocations(ctx context.Context, approval *domain.ApprovalRequest) error {
	if approval.AllocationRequestID == nil {
		uc.logger.Error("ResolveApproval: equipment request id=%d has no allocation reference", approval.ID)
		return fmt.Errorf("%w: equipment request without allocation reference", ErrInternal)
	}

	requestID := *approval.AllocationRequestID

	request, err := uc.allocationRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		uc.logger.Error("ResolveApproval: failed to get allocation request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to get allocation request: %v", ErrInternal, err)
	}

	if request.Status != domain.AllocationPendingApproval {
		uc.logger.Warn("ResolveApproval: allocation request id=%d is %s, not pending", requestID, request.Status)
		return ErrInvalidStateTransition
	}

	if err := uc.allocationRepo.UpdateAllocationsStatus(ctx, requestID, domain.AllocationConfirmed); err != nil {
		uc.logger.Error("ResolveApproval: failed to confirm allocations for request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to confirm allocations: %v", ErrInternal, err)
	}

	if err := uc.allocationRepo.UpdateRequestStatus(ctx, requestID, domain.AllocationConfirmed); err != nil {
		uc.logger.Error("ResolveApproval: failed to confirm allocation request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to confirm allocation request: %v", ErrInternal, err)
	}

	return nil
}

// discardReservation отбрасывает pending-бронирование отклонённого запроса.
// Бронирование, уже отменённое автором, считается отброшенным - отклонение
// проходит и закрывает висящий запрос согласования.
func (uc *UseCase) discardReservation(ctx context.Context, approval *domain.ApprovalRequest) error {
	if approval.ReservationID == nil {
		uc.logger.Error("ResolveApproval: room request id=%d has no reservation reference", approval.ID)
		return fmt.Errorf("%w: room request without reservation reference", ErrInternal)
	}

	if err := uc.reservationRepo.Discard(ctx, *approval.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("ResolveApproval: reservation id=%d is no longer pending, nothing to discard", *approval.ReservationID)
			return nil
		}
		uc.logger.Error("ResolveApproval: failed to discard reservation id=%d: %v", *approval.ReservationID, err)
		return fmt.Errorf("%w: failed to discard reservation: %v", ErrInternal, err)
	}

	return nil
}

// releaseAllocations возвращает удержанное количество отклонённого запроса в пул
func (uc *UseCase) releaseAllocations(ctx context.Context, approval *domain.ApprovalRequest) error {
	if approval.AllocationRequestID == nil {
		uc.logger.Error("ResolveApproval: equipment request id=%d has no allocation reference", approval.ID)
		return fmt.Errorf("%w: equipment request without allocation reference", ErrInternal)
	}

	requestID := *approval.AllocationRequestID

	allocations, err := uc.allocationRepo.GetAllocationsByRequestID(ctx, requestID)
	if err != nil {
		uc.logger.Error("ResolveApproval: failed to get allocations for request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
	}

	for _, alloc := range allocations {
		if !alloc.IsActive() {
			continue
		}
		if err := uc.equipmentRepo.AdjustAvailable(ctx, alloc.EquipmentID, alloc.Quantity); err != nil {
			uc.logger.Error("ResolveApproval: failed to restore equipment id=%d by %d: %v",
				alloc.EquipmentID, alloc.Quantity, err)
			return fmt.Errorf("%w: failed to restore available quantity: %v", ErrInternal, err)
		}
	}

	if err := uc.allocationRepo.UpdateAllocationsStatus(ctx, requestID, domain.AllocationReleased); err != nil {
		uc.logger.Error("ResolveApproval: failed to release allocations for request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to release allocations: %v", ErrInternal, err)
	}

	if err := uc.allocationRepo.UpdateRequestStatus(ctx, requestID, domain.AllocationReleased); err != nil {
		uc.logger.Error("ResolveApproval: failed to release allocation request id=%d: %v", requestID, err)
		return fmt.Errorf("%w: failed to release allocation request: %v", ErrInternal, err)
	}

	return nil
}

// publishResolutionEvents публикует события резолюции после коммита транзакции
func (uc *UseCase) publishResolutionEvents(ctx context.Context, resolved *domain.ApprovalRequest, reservation *domain.Reservation) {
	reviewedAt := ""
	if resolved.ReviewedAt != nil {
		reviewedAt = resolved.ReviewedAt.UTC().Format(domain.TimestampFormat)
	}

	if resolved.Status == domain.ApprovalApproved {
		event := queue.RequestApprovedEvent{
			EventID:     uuid.NewString(),
			RequestID:   resolved.ID,
			RequestType: string(resolved.Type),
			Title:       resolved.Title,
			RequestedBy: resolved.RequestedBy,
			ReviewedBy:  derefInt64(resolved.ReviewedBy),
			Comments:    resolved.Comments,
			ReviewedAt:  reviewedAt,
		}
		if err := uc.publisher.PublishRequestApproved(ctx, event); err != nil {
			uc.logger.Warn("ResolveApproval: failed to publish approved event for id=%d: %v", resolved.ID, err)
		}

		// Одобренное room-согласование - это ещё и подтверждение бронирования
		if reservation != nil {
			facilityName := ""
			if facility, err := uc.facilityRepo.GetByID(ctx, reservation.FacilityID); err == nil {
				facilityName = facility.Name
			} else {
				uc.logger.Warn("ResolveApproval: failed to get facility id=%d for event: %v", reservation.FacilityID, err)
			}

			confirmEvent := queue.ReservationConfirmedEvent{
				EventID:       uuid.NewString(),
				ReservationID: reservation.ID,
				FacilityID:    reservation.FacilityID,
				FacilityName:  facilityName,
				Date:          reservation.Date.Format(domain.DateFormat),
				StartTime:     string(reservation.StartTime),
				EndTime:       string(reservation.EndTime),
				EventTitle:    reservation.EventTitle,
				CreatedBy:     reservation.CreatedBy,
				ConfirmedAt:   reviewedAt,
			}
			if err := uc.publisher.PublishReservationConfirmed(ctx, confirmEvent); err != nil {
				uc.logger.Warn("ResolveApproval: failed to publish confirmation event for reservation id=%d: %v", reservation.ID, err)
			}
		}
		return
	}

	event := queue.RequestRejectedEvent{
		EventID:     uuid.NewString(),
		RequestID:   resolved.ID,
		RequestType: string(resolved.Type),
		Title:       resolved.Title,
		RequestedBy: resolved.RequestedBy,
		ReviewedBy:  derefInt64(resolved.ReviewedBy),
		Comments:    derefString(resolved.Comments),
		ReviewedAt:  reviewedAt,
	}
	if err := uc.publisher.PublishRequestRejected(ctx, event); err != nil {
		uc.logger.Warn("ResolveApproval: failed to publish rejected event for id=%d: %v", resolved.ID, err)
	}
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
