package release_allocations

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	allocationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/allocation"
)

// UseCase use case освобождения инвентаря: обратная операция к запросу.
// Идемпотентна по ID запроса - количество возвращается в пул ровно один раз.
type UseCase struct {
	equipmentRepo  EquipmentRepository
	allocationRepo AllocationRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	equipmentRepo EquipmentRepository,
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo:  equipmentRepo,
		allocationRepo: allocationRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute освобождает инвентарь запроса. Повторный вызов для уже
// освобождённого запроса - успешный no-op без повторного зачисления.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReleaseAllocations: request=%d", req.RequestID)

	if req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: requestId must be positive", ErrInvalidInput)
	}

	response := &Response{
		RequestID:            req.RequestID,
		Status:               string(domain.AllocationReleased),
		ReleasedQuantityByID: make(map[int64]int),
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем заголовок запроса с блокировкой (FOR UPDATE):
		// конкурирующий release увидит уже обновлённый статус
		request, err := uc.allocationRepo.GetRequestByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, allocationRepo.ErrRequestNotFound) {
				uc.logger.Warn("ReleaseAllocations: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("ReleaseAllocations: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 2. Уже освобождён - идемпотентный выход без зачисления
		if request.Status == domain.AllocationReleased {
			uc.logger.Info("ReleaseAllocations: request id=%d already released, no-op", req.RequestID)
			response.AlreadyReleased = true
			return nil
		}

		// 3. Возвращаем количество в пул по каждой активной аллокации
		allocations, err := uc.allocationRepo.GetAllocationsByRequestID(txCtx, req.RequestID)
		if err != nil {
			uc.logger.Error("ReleaseAllocations: failed to get allocations for request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get allocations: %v", ErrInternal, err)
		}

		for _, alloc := range allocations {
			if !alloc.IsActive() {
				continue
			}

			if err := uc.equipmentRepo.AdjustAvailable(txCtx, alloc.EquipmentID, alloc.Quantity); err != nil {
				uc.logger.Error("ReleaseAllocations: failed to restore equipment id=%d by %d: %v",
					alloc.EquipmentID, alloc.Quantity, err)
				return fmt.Errorf("%w: failed to restore available quantity: %v", ErrInternal, err)
			}
			response.ReleasedQuantityByID[alloc.EquipmentID] += alloc.Quantity
		}

		// 4. Переводим аллокации и заголовок в released
		if err := uc.allocationRepo.UpdateAllocationsStatus(txCtx, req.RequestID, domain.AllocationReleased); err != nil {
			uc.logger.Error("ReleaseAllocations: failed to update allocations status for request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to update allocations: %v", ErrInternal, err)
		}

		if err := uc.allocationRepo.UpdateRequestStatus(txCtx, req.RequestID, domain.AllocationReleased); err != nil {
			uc.logger.Error("ReleaseAllocations: failed to update request status id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to update request: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReleaseAllocations: request id=%d released (noop=%t)", req.RequestID, response.AlreadyReleased)
	return response, nil
}
