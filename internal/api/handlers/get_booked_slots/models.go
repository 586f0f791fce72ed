package get_booked_slots

import (
	"github.com/faithworks/FWS-ReservationService/internal/domain"
	getBookedSlots "github.com/faithworks/FWS-ReservationService/internal/usecase/get_booked_slots"
)

// SlotResponse занятый интервал в HTTP ответе
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	EventTitle      string `json:"eventTitle"`
	DurationMinutes int    `json:"durationMinutes"`
}

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	FacilityID   int64          `json:"facilityId"`
	FacilityName string         `json:"facilityName"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookedSlots.Response) *BookedSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			EventTitle:      s.EventTitle,
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &BookedSlotsResponse{
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
