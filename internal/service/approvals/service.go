package approvals

import (
	"context"
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	approvalRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/approval"
	"github.com/faithworks/FWS-ReservationService/internal/service/approvals/models"
)

// Service сервис очереди согласования: чтение запросов для экрана
// ревьюера. Резолюция (approve/reject) - отдельный usecase.
type Service struct {
	approvalRepo ApprovalRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса очереди согласования
func NewService(approvalRepo ApprovalRepository, logger Logger) *Service {
	return &Service{
		approvalRepo: approvalRepo,
		logger:       logger,
	}
}

// GetByID получает запрос на согласование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ApprovalResponse, error) {
	s.logger.Info("GetByID: fetching approval request id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: approval request id must be positive", ErrInvalidInput)
	}

	request, err := s.approvalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, approvalRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: approval request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for approval request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainApproval(request), nil
}

// List получает очередь согласования с фильтрацией по статусу и типу.
// Запросы упорядочены по приоритету (urgent первыми), затем по времени подачи.
func (s *Service) List(ctx context.Context, req *models.ListApprovalsRequest) (*models.ApprovalListResponse, error) {
	s.logger.Info("List: status=%v, type=%v", req.Status, req.Type)

	filter := domain.ApprovalFilter{}

	if req.Status != nil {
		status := domain.ApprovalStatus(*req.Status)
		switch status {
		case domain.ApprovalPending, domain.ApprovalApproved, domain.ApprovalRejected:
			filter.Status = &status
		default:
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
	}

	if req.Type != nil {
		requestType := domain.RequestType(*req.Type)
		if !domain.ValidRequestType(requestType) {
			s.logger.Warn("List: invalid type filter %q", *req.Type)
			return nil, fmt.Errorf("%w: invalid type %q", ErrInvalidInput, *req.Type)
		}
		filter.Type = &requestType
	}

	requests, err := s.approvalRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d approval requests", len(requests))
	return models.FromDomainApprovals(requests), nil
}
