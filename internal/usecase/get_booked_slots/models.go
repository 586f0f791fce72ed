package get_booked_slots

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

// Request модель запроса занятости помещения на дату
type Request struct {
	FacilityID int64     // ID помещения
	Date       time.Time // Дата (без времени)
}

// Response модель ответа с занятыми интервалами
type Response struct {
	FacilityID   int64     // ID помещения
	FacilityName string    // Название помещения
	Date         time.Time // Дата, на которую запрашивалась занятость
	Slots        []Slot    // Занятые интервалы по возрастанию времени начала
}

// Slot занятый интервал дня
type Slot struct {
	StartTime       types.TimeString // Начало интервала, включительно
	EndTime         types.TimeString // Конец интервала, исключительно
	EventTitle      string           // Название занявшего слот события
	DurationMinutes int              // Длительность в минутах
}
