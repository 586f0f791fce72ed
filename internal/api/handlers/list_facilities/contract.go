package list_facilities

import (
	"context"

	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListFacilities(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
