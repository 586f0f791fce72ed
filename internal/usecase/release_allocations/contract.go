package release_allocations

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	AdjustAvailable(ctx context.Context, id int64, delta int) error
}

// AllocationRepository интерфейс репозитория аллокаций инвентаря
type AllocationRepository interface {
	GetRequestByID(ctx context.Context, id int64) (*domain.AllocationRequest, error)
	GetAllocationsByRequestID(ctx context.Context, requestID int64) ([]*domain.EquipmentAllocation, error)
	UpdateRequestStatus(ctx context.Context, id int64, status domain.AllocationStatus) error
	UpdateAllocationsStatus(ctx context.Context, requestID int64, status domain.AllocationStatus) error
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
