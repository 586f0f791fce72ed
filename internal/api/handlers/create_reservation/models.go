package create_reservation

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
	createReservation "github.com/faithworks/FWS-ReservationService/internal/usecase/create_reservation"
	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FacilityID int64  `json:"facilityId"`
	Date       string `json:"date"`      // "2026-09-06"
	StartTime  string `json:"startTime"` // "10:00"
	EndTime    string `json:"endTime"`   // "12:00"
	EventTitle string `json:"eventTitle"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID                int64  `json:"id"`
	FacilityID        int64  `json:"facilityId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	EventTitle        string `json:"eventTitle"`
	Status            string `json:"status"`
	CreatedBy         int64  `json:"createdBy"`
	ApprovalRequestID *int64 `json:"approvalRequestId,omitempty"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ConflictResponse тело ответа 409 с деталями пересечения
type ConflictResponse struct {
	Error            string `json:"error"`
	ConflictingEvent string `json:"conflictingEvent"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		FacilityID: r.FacilityID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		EventTitle: r.EventTitle,
		CreatedBy:  userID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:                resp.ID,
		FacilityID:        resp.FacilityID,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		EndTime:           resp.EndTime.String(),
		EventTitle:        resp.EventTitle,
		Status:            resp.Status,
		CreatedBy:         resp.CreatedBy,
		ApprovalRequestID: resp.ApprovalRequestID,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
