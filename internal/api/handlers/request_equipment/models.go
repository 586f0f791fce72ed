package request_equipment

import (
	"time"

	requestEquipment "github.com/faithworks/FWS-ReservationService/internal/usecase/request_equipment"
)

// LineRequest позиция корзины в HTTP запросе
type LineRequest struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// RequestEquipmentRequest HTTP request model
type RequestEquipmentRequest struct {
	Items            []LineRequest `json:"items"`
	EventTitle       string        `json:"eventTitle"`
	Notes            *string       `json:"notes,omitempty"`
	RequiresApproval bool          `json:"requiresApproval,omitempty"`
}

// AllocationResponse аллокация в HTTP ответе
type AllocationResponse struct {
	ID          int64  `json:"id"`
	EquipmentID int64  `json:"equipmentId"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
}

// RequestEquipmentResponse HTTP response model
type RequestEquipmentResponse struct {
	RequestID         int64                `json:"requestId"`
	Status            string               `json:"status"`
	Allocations       []AllocationResponse `json:"allocations"`
	ApprovalRequestID *int64               `json:"approvalRequestId,omitempty"`
	CreatedAt         string               `json:"createdAt"`
}

// InsufficientQuantityResponse тело ответа 422 с деталями нехватки
type InsufficientQuantityResponse struct {
	Error       string `json:"error"`
	EquipmentID int64  `json:"equipmentId"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RequestEquipmentRequest) ToUseCaseRequest(userID int64) *requestEquipment.Request {
	items := make([]requestEquipment.Line, 0, len(r.Items))
	for _, line := range r.Items {
		items = append(items, requestEquipment.Line{
			EquipmentID: line.EquipmentID,
			Quantity:    line.Quantity,
		})
	}

	return &requestEquipment.Request{
		Items:            items,
		RequestedBy:      userID,
		EventTitle:       r.EventTitle,
		Notes:            r.Notes,
		RequiresApproval: r.RequiresApproval,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *requestEquipment.Response) *RequestEquipmentResponse {
	allocations := make([]AllocationResponse, 0, len(resp.Allocations))
	for _, a := range resp.Allocations {
		allocations = append(allocations, AllocationResponse{
			ID:          a.ID,
			EquipmentID: a.EquipmentID,
			Quantity:    a.Quantity,
			Status:      a.Status,
		})
	}

	return &RequestEquipmentResponse{
		RequestID:         resp.RequestID,
		Status:            resp.Status,
		Allocations:       allocations,
		ApprovalRequestID: resp.ApprovalRequestID,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
