package request_equipment

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.EquipmentItem, error)
	AdjustAvailable(ctx context.Context, id int64, delta int) error
}

// AllocationRepository интерфейс репозитория аллокаций инвентаря
type AllocationRepository interface {
	CreateRequest(ctx context.Context, request *domain.AllocationRequest) (*domain.AllocationRequest, error)
	CreateAllocation(ctx context.Context, alloc *domain.EquipmentAllocation) (*domain.EquipmentAllocation, error)
}

// ApprovalRepository интерфейс репозитория запросов на согласование
type ApprovalRepository interface {
	Create(ctx context.Context, request *domain.ApprovalRequest) (*domain.ApprovalRequest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
