package get_facility

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	GetFacility(ctx context.Context, id int64) (*models.FacilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
