package resolve_approval

import (
	"time"

	resolveApproval "github.com/faithworks/FWS-ReservationService/internal/usecase/resolve_approval"
)

// ResolveApprovalRequest HTTP request model.
// Ревьюер берётся из тела, а не из заголовка аутентификации: резолюцию
// может проводить оператор от имени ответственного.
type ResolveApprovalRequest struct {
	ReviewerID int64   `json:"reviewerId"`
	Comment    *string `json:"comment,omitempty"`
}

// ApprovalResponse HTTP response model
type ApprovalResponse struct {
	ID                  int64   `json:"id"`
	Type                string  `json:"type"`
	Status              string  `json:"status"`
	ReviewedBy          int64   `json:"reviewedBy"`
	ReviewedAt          *string `json:"reviewedAt,omitempty"`
	Comments            *string `json:"comments,omitempty"`
	ReservationID       *int64  `json:"reservationId,omitempty"`
	AllocationRequestID *int64  `json:"allocationRequestId,omitempty"`
}

// ConflictResponse тело ответа 409 при конфликте на момент согласования
type ConflictResponse struct {
	Error            string `json:"error"`
	ConflictingEvent string `json:"conflictingEvent"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveApproval.Response) *ApprovalResponse {
	var reviewedAt *string
	if resp.ReviewedAt != nil {
		formatted := resp.ReviewedAt.Format(time.RFC3339)
		reviewedAt = &formatted
	}

	return &ApprovalResponse{
		ID:                  resp.ID,
		Type:                resp.Type,
		Status:              resp.Status,
		ReviewedBy:          resp.ReviewedBy,
		ReviewedAt:          reviewedAt,
		Comments:            resp.Comments,
		ReservationID:       resp.ReservationID,
		AllocationRequestID: resp.AllocationRequestID,
	}
}
