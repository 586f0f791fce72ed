package get_equipment_item

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	GetEquipmentItem(ctx context.Context, id int64) (*models.EquipmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
