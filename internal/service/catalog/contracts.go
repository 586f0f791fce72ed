package catalog

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// FacilityRepository интерфейс репозитория помещений
type FacilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	List(ctx context.Context, filter domain.FacilityFilter) ([]*domain.Facility, error)
}

// EquipmentRepository интерфейс репозитория инвентаря
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.EquipmentItem, error)
	List(ctx context.Context, filter domain.EquipmentFilter) ([]*domain.EquipmentItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
