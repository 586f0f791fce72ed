package list_approvals

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/service/approvals/models"
)

type ApprovalService interface {
	List(ctx context.Context, req *models.ListApprovalsRequest) (*models.ApprovalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
