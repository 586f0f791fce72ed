package domain

import "github.com/faithworks/FWS-ReservationService/pkg/types"

// BookedSlot represents an already-booked time window on a facility,
// as rendered in the day view and fed to conflict checks
type BookedSlot struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	EventTitle string
}

// DurationMinutes returns the slot length in minutes
func (s *BookedSlot) DurationMinutes() int {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return 0
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}
