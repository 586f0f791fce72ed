package release_allocations

import (
	"context"

	releaseAllocations "github.com/faithworks/FWS-ReservationService/internal/usecase/release_allocations"
)

type ReleaseAllocationsUseCase interface {
	Execute(ctx context.Context, req *releaseAllocations.Request) (*releaseAllocations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
