package models

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// Request модели

// ListByFacilityRequest запрос на получение бронирований помещения
type ListByFacilityRequest struct {
	FacilityID int64      `json:"facilityId"`
	Date       *time.Time `json:"date,omitempty"` // Конкретная дата (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByFacilityRequest) ToDomainFilter() domain.ReservationFilter {
	return domain.ReservationFilter{
		FacilityID: r.FacilityID,
		Date:       r.Date,
	}
}

// Response модели

// ReservationResponse бронирование в ответе API
type ReservationResponse struct {
	ID         int64  `json:"id"`
	FacilityID int64  `json:"facilityId"`
	Date       string `json:"date"`      // YYYY-MM-DD
	StartTime  string `json:"startTime"` // HH:MM
	EndTime    string `json:"endTime"`   // HH:MM
	EventTitle string `json:"eventTitle"`
	Status     string `json:"status"`
	CreatedBy  int64  `json:"createdBy"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.ID,
		FacilityID:  r.FacilityID,
		Date:        r.Date.Format(domain.DateFormat),
		StartTime:   string(r.StartTime),
		EndTime:     string(r.EndTime),
		EventTitle:  r.EventTitle,
		Status:      string(r.Status),
		CreatedBy:   r.CreatedBy,
		CancelledAt: r.CancelledAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список domain моделей в response
func FromDomainReservations(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}

	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
