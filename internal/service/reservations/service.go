package reservations

import (
	"context"
	"errors"
	"fmt"

	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/reservation"
	"github.com/faithworks/FWS-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения и отмены бронирований.
// Создание бронирований - отдельный usecase с проверкой конфликтов.
type Service struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// ListByFacility получает бронирования помещения, опционально на конкретную дату.
// Отменённые бронирования в выдачу не попадают.
func (s *Service) ListByFacility(ctx context.Context, req *models.ListByFacilityRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByFacility: facility=%d, date=%v", req.FacilityID, req.Date)

	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}

	// Проверяем, что помещение существует - пустой список для несуществующего
	// помещения вводит клиентов в заблуждение
	if _, err := s.facilityRepo.GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("ListByFacility: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("ListByFacility: facility lookup failed for id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: ListByFacility - facility lookup: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("ListByFacility: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: ListByFacility - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByFacility: found %d reservations for facility=%d", len(reservations), req.FacilityID)
	return models.FromDomainReservations(reservations), nil
}

// Cancel отменяет бронирование. Операция идемпотентна: повторная отмена
// возвращает успех, не меняя cancelled_at.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	// Проверяем существование до отмены - Cancel в репозитории no-op
	// для несуществующих строк
	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - reload after cancel: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(cancelled), nil
}
