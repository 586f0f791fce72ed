package create_reservation

import (
	"time"

	"github.com/faithworks/FWS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования помещения
type Request struct {
	FacilityID int64            // ID помещения
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало интервала, включительно ("10:00")
	EndTime    types.TimeString // Конец интервала, исключительно ("12:00")
	EventTitle string           // Название события
	CreatedBy  int64            // ID пользователя, создающего бронирование
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64            // ID созданного бронирования
	FacilityID int64            // ID помещения
	Date       time.Time        // Дата бронирования
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца
	EventTitle string           // Название события
	Status     string           // confirmed или pending_approval
	CreatedBy  int64            // ID пользователя

	// ApprovalRequestID заполняется, когда помещение требует согласования
	// и бронирование создано в статусе pending_approval
	ApprovalRequestID *int64

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
