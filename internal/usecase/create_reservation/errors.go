package create_reservation

import (
	"errors"
	"fmt"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

var (
	// ErrFacilityNotFound возвращается, когда помещение не найдено
	ErrFacilityNotFound = errors.New("create_reservation: facility not found")

	// ErrInvalidTimeRange возвращается, когда интервал некорректен
	// (start >= end или невалидный формат времени)
	ErrInvalidTimeRange = errors.New("create_reservation: invalid time range")

	// ErrTimeConflict возвращается, когда интервал пересекается с
	// подтверждённым бронированием
	ErrTimeConflict = errors.New("create_reservation: time conflict with existing reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ConflictError описывает пересечение с существующим бронированием.
// Название занявшего слот события возвращается клиенту.
type ConflictError struct {
	EventTitle string
	StartTime  types.TimeString
	EndTime    types.TimeString
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_reservation: time conflict with %q (%s-%s)",
		e.EventTitle, e.StartTime, e.EndTime)
}

// Is позволяет errors.Is(err, ErrTimeConflict) для типизированной ошибки
func (e *ConflictError) Is(target error) bool {
	return target == ErrTimeConflict
}
