package approvals

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// ApprovalRepository интерфейс репозитория запросов на согласование
type ApprovalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ApprovalRequest, error)
	ListWithFilter(ctx context.Context, filter domain.ApprovalFilter) ([]*domain.ApprovalRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
