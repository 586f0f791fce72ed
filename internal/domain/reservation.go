package domain

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a facility reservation
type ReservationStatus string

const (
	ReservationConfirmed       ReservationStatus = "confirmed"
	ReservationPendingApproval ReservationStatus = "pending_approval"
	ReservationCancelled       ReservationStatus = "cancelled"
)

// Reservation represents a time-bound claim on a facility.
// StartTime and EndTime are same-day wall-clock values; the interval is
// half-open [StartTime, EndTime), so back-to-back reservations do not overlap.
type Reservation struct {
	ID         int64
	FacilityID int64
	Date       time.Time // calendar day, time component is zero
	StartTime  types.TimeString
	EndTime    types.TimeString
	EventTitle string
	Status     ReservationStatus
	CreatedBy  int64

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the reservation blocks the slot for others
func (r *Reservation) IsConfirmed() bool {
	return r.Status == ReservationConfirmed
}

// IsPending returns true if the reservation awaits approval
func (r *Reservation) IsPending() bool {
	return r.Status == ReservationPendingApproval
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == ReservationConfirmed || r.Status == ReservationPendingApproval
}

// Overlaps reports whether the reservation's window overlaps [start, end)
// under half-open interval semantics: boundary equality is not overlap.
func (r *Reservation) Overlaps(start, end types.TimeString) bool {
	return r.StartTime.IsBefore(end) && start.IsBefore(r.EndTime)
}

// ReservationFilter фильтр для выборки бронирований помещения
type ReservationFilter struct {
	FacilityID    int64      // Обязательный параметр
	Date          *time.Time // Конкретная дата (опционально)
	ConfirmedOnly bool       // Только подтверждённые (для проверки конфликтов)
}
