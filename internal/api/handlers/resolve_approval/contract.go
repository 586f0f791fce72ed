package resolve_approval

import (
	"context"

	resolveApproval "github.com/faithworks/FWS-ReservationService/internal/usecase/resolve_approval"
)

type ResolveApprovalUseCase interface {
	Execute(ctx context.Context, req *resolveApproval.Request) (*resolveApproval.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
