package resolve_approval

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
)

// ApprovalRepository интерфейс репозитория запросов на согласование
type ApprovalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error)
	Resolve(ctx context.Context, id int64, status domain.ApprovalStatus, reviewerID int64, comment *string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Discard(ctx context.Context, id int64) error
}

// AllocationRepository интерфейс репозитория аллокаций инвентаря
type AllocationRepository interface {
	GetRequestByID(ctx context.Context, id int64) (*domain.AllocationRequest, error)
	GetAllocationsByRequestID(ctx context.Context, requestID int64) ([]*domain.EquipmentAllocation, error)
	UpdateRequestStatus(ctx context.Context, id int64, status domain.AllocationStatus) error
	UpdateAllocationsStatus(ctx context.Context, requestID int64, status domain.AllocationStatus) error
}

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	AdjustAvailable(ctx context.Context, id int64, delta int) error
}

// FacilityRepository интерфейс репозитория помещений
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
}

// IdentityServiceClient интерфейс клиента IdentityService
type IdentityServiceClient interface {
	CanApprove(ctx context.Context, reviewerID int64, requestType string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, event queue.ReservationConfirmedEvent) error
	PublishRequestApproved(ctx context.Context, event queue.RequestApprovedEvent) error
	PublishRequestRejected(ctx context.Context, event queue.RequestRejectedEvent) error
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
