package models

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// Request модели

// ListApprovalsRequest запрос на получение очереди согласования
type ListApprovalsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	Type   *string `json:"type,omitempty"`   // Фильтр по типу запроса (опционально)
}

// Response модели

// ApprovalResponse запрос на согласование в ответе API
type ApprovalResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	RequestedBy int64     `json:"requestedBy"`
	RequestedAt time.Time `json:"requestedAt"`
	Status      string    `json:"status"`

	ReservationID       *int64 `json:"reservationId,omitempty"`
	AllocationRequestID *int64 `json:"allocationRequestId,omitempty"`

	ReviewedBy *int64     `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	Comments   *string    `json:"comments,omitempty"`
}

// ApprovalListResponse очередь согласования
type ApprovalListResponse struct {
	Requests []ApprovalResponse `json:"requests"`
	Total    int                `json:"total"`
}

// FromDomainApproval конвертирует domain модель в response
func FromDomainApproval(r *domain.ApprovalRequest) *ApprovalResponse {
	return &ApprovalResponse{
		ID:                  r.ID,
		Type:                string(r.Type),
		Title:               r.Title,
		Description:         r.Description,
		Priority:            string(r.Priority),
		RequestedBy:         r.RequestedBy,
		RequestedAt:         r.RequestedAt,
		Status:              string(r.Status),
		ReservationID:       r.ReservationID,
		AllocationRequestID: r.AllocationRequestID,
		ReviewedBy:          r.ReviewedBy,
		ReviewedAt:          r.ReviewedAt,
		Comments:            r.Comments,
	}
}

// FromDomainApprovals конвертирует список domain моделей в response
func FromDomainApprovals(requests []*domain.ApprovalRequest) *ApprovalListResponse {
	result := make([]ApprovalResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, *FromDomainApproval(r))
	}

	return &ApprovalListResponse{
		Requests: result,
		Total:    len(result),
	}
}
