package request_equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	equipmentRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/equipment"
	"github.com/faithworks/FWS-ReservationService/pkg/ptr"
)

// UseCase use case запроса инвентаря: валидация корзины и списание
// доступного количества одним атомарным шагом
type UseCase struct {
	equipmentRepo  EquipmentRepository
	allocationRepo AllocationRepository
	approvalRepo   ApprovalRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	equipmentRepo EquipmentRepository,
	allocationRepo AllocationRepository,
	approvalRepo ApprovalRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		equipmentRepo:  equipmentRepo,
		allocationRepo: allocationRepo,
		approvalRepo:   approvalRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case запроса инвентаря.
// Валидация корзины - всё или ничего: любая непрошедшая позиция
// отклоняет весь запрос без частичных списаний. Количество удерживается
// сразу, в том числе для pending_approval запросов: ушедшая на
// согласование корзина не должна быть разобрана другими заявками.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RequestEquipment: user=%d, lines=%d, approval=%t",
		req.RequestedBy, len(req.Items), req.RequiresApproval)

	// 1. Валидация корзины
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RequestEquipment: validation failed: %v", err)
		return nil, err
	}

	var (
		result          *domain.AllocationRequest
		allocations     []AllocationResult
		approvalRequest *domain.ApprovalRequest
	)

	status := domain.AllocationConfirmed
	if req.RequiresApproval {
		status = domain.AllocationPendingApproval
	}

	// 2. Проверка доступности и списание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Проверяем каждую позицию против доступного количества
		// на момент вызова (GetByID внутри транзакции берёт FOR UPDATE)
		for _, line := range req.Items {
			item, err := uc.equipmentRepo.GetByID(txCtx, line.EquipmentID)
			if err != nil {
				if errors.Is(err, equipmentRepo.ErrItemNotFound) {
					uc.logger.Warn("RequestEquipment: equipment id=%d not found", line.EquipmentID)
					return fmt.Errorf("%w: id=%d", ErrEquipmentNotFound, line.EquipmentID)
				}
				uc.logger.Error("RequestEquipment: failed to get equipment id=%d: %v", line.EquipmentID, err)
				return fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
			}

			if !item.IsAvailable(line.Quantity) {
				uc.logger.Warn("RequestEquipment: insufficient quantity for id=%d: requested=%d, available=%d",
					line.EquipmentID, line.Quantity, item.AvailableQuantity)
				return &InsufficientQuantityError{
					EquipmentID: line.EquipmentID,
					Requested:   line.Quantity,
					Available:   item.AvailableQuantity,
				}
			}
		}

		// 2.2. Корзина прошла целиком - создаём заголовок запроса
		request := &domain.AllocationRequest{
			RequestedBy: req.RequestedBy,
			EventTitle:  req.EventTitle,
			Notes:       req.Notes,
			Status:      status,
		}

		created, err := uc.allocationRepo.CreateRequest(txCtx, request)
		if err != nil {
			uc.logger.Error("RequestEquipment: failed to create allocation request: %v", err)
			return fmt.Errorf("%w: failed to create allocation request: %v", ErrInternal, err)
		}

		// 2.3. Списываем количество и создаём аллокации по позициям.
		// Ограждающий UPDATE в AdjustAvailable - вторая линия обороны
		// инварианта 0 <= available <= quantity.
		allocations = make([]AllocationResult, 0, len(req.Items))
		for _, line := range req.Items {
			if err := uc.equipmentRepo.AdjustAvailable(txCtx, line.EquipmentID, -line.Quantity); err != nil {
				uc.logger.Error("RequestEquipment: failed to decrement equipment id=%d by %d: %v",
					line.EquipmentID, line.Quantity, err)
				return fmt.Errorf("%w: failed to decrement available quantity: %v", ErrInternal, err)
			}

			alloc := &domain.EquipmentAllocation{
				RequestID:   created.ID,
				EquipmentID: line.EquipmentID,
				Quantity:    line.Quantity,
				Status:      status,
			}

			createdAlloc, err := uc.allocationRepo.CreateAllocation(txCtx, alloc)
			if err != nil {
				uc.logger.Error("RequestEquipment: failed to create allocation: %v", err)
				return fmt.Errorf("%w: failed to create allocation: %v", ErrInternal, err)
			}

			allocations = append(allocations, AllocationResult{
				ID:          createdAlloc.ID,
				EquipmentID: createdAlloc.EquipmentID,
				Quantity:    createdAlloc.Quantity,
				Status:      string(createdAlloc.Status),
			})
		}

		// 2.4. Запрос, требующий согласования, уходит в очередь
		if req.RequiresApproval {
			approval := &domain.ApprovalRequest{
				Type:                domain.RequestTypeEquipment,
				Title:               req.EventTitle,
				Description:         fmt.Sprintf("%d позиций инвентаря", len(req.Items)),
				Priority:            domain.PriorityNormal,
				RequestedBy:         req.RequestedBy,
				Status:              domain.ApprovalPending,
				AllocationRequestID: ptr.Ptr(created.ID),
			}

			createdApproval, err := uc.approvalRepo.Create(txCtx, approval)
			if err != nil {
				uc.logger.Error("RequestEquipment: failed to create approval request: %v", err)
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

	uc.logger.Info("RequestEquipment: created request id=%d status=%s with %d allocations",
		result.ID, result.Status, len(allocations))

	response := &Response{
		RequestID:   result.ID,
		Status:      string(result.Status),
		Allocations: allocations,
		CreatedAt:   result.CreatedAt,
	}
	if approvalRequest != nil {
		response.ApprovalRequestID = ptr.Ptr(approvalRequest.ID)
	}

	return response, nil
}
