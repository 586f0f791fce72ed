package list_equipment

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListEquipment(ctx context.Context, req *models.ListEquipmentRequest) (*models.EquipmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
