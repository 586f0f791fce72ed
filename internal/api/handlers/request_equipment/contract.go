package request_equipment

import (
	"context"

	requestEquipment "github.com/faithworks/FWS-ReservationService/internal/usecase/request_equipment"
)

type RequestEquipmentUseCase interface {
	Execute(ctx context.Context, req *requestEquipment.Request) (*requestEquipment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
