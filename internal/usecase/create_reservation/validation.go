package create_reservation

import (
	"fmt"
	"strings"

	"github.com/faithworks/FWS-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityId must be positive", ErrInvalidInput)
	}

	if req.CreatedBy <= 0 {
		return fmt.Errorf("%w: createdBy must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	title := strings.TrimSpace(req.EventTitle)
	if title == "" {
		return fmt.Errorf("%w: eventTitle is required", ErrInvalidInput)
	}
	if len(title) > domain.MaxEventTitleLength {
		return fmt.Errorf("%w: eventTitle exceeds %d characters", ErrInvalidInput, domain.MaxEventTitleLength)
	}

	return validateTimeRange(req)
}

// validateTimeRange проверяет формат времени и порядок границ интервала.
// Интервал полуоткрытый [start, end), нулевая длина недопустима.
func validateTimeRange(req *Request) error {
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime %q", ErrInvalidTimeRange, req.StartTime)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime %q", ErrInvalidTimeRange, req.EndTime)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
}
