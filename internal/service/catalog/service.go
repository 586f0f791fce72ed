package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	equipmentRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/equipment"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	"github.com/faithworks/FWS-ReservationService/internal/service/catalog/models"
)

// Service сервис каталога ресурсов: помещения и инвентарь
type Service struct {
	facilityRepo  FacilityRepository
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	facilityRepo FacilityRepository,
	equipmentRepo EquipmentRepository,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo:  facilityRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// GetFacility получает помещение по ID
func (s *Service) GetFacility(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	s.logger.Info("GetFacility: fetching facility id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: facility id must be positive", ErrInvalidInput)
	}

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetFacility - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}

// ListFacilities получает список помещений с фильтрацией по корпусу,
// минимальной вместимости и оснащению
func (s *Service) ListFacilities(ctx context.Context, req *models.ListFacilitiesRequest) (*models.FacilityListResponse, error) {
	s.logger.Info("ListFacilities: building=%v, minCapacity=%v, amenity=%v",
		req.Building, req.MinCapacity, req.Amenity)

	if req.MinCapacity != nil && *req.MinCapacity <= 0 {
		return nil, fmt.Errorf("%w: minCapacity must be positive", ErrInvalidInput)
	}

	facilities, err := s.facilityRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListFacilities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFacilities - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListFacilities: found %d facilities", len(facilities))
	return models.FromDomainFacilities(facilities), nil
}

// GetEquipmentItem получает позицию инвентаря по ID
func (s *Service) GetEquipmentItem(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	s.logger.Info("GetEquipmentItem: fetching equipment id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: equipment id must be positive", ErrInvalidInput)
	}

	item, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrItemNotFound) {
			s.logger.Warn("GetEquipmentItem: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetEquipmentItem: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetEquipmentItem - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(item), nil
}

// ListEquipment получает список инвентаря с фильтрацией по категории
func (s *Service) ListEquipment(ctx context.Context, req *models.ListEquipmentRequest) (*models.EquipmentListResponse, error) {
	s.logger.Info("ListEquipment: category=%v", req.Category)

	items, err := s.equipmentRepo.List(ctx, domain.EquipmentFilter{Category: req.Category})
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEquipment: found %d items", len(items))
	return models.FromDomainEquipmentList(items), nil
}
