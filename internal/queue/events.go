// Package queue определяет события, публикуемые в брокер сообщений
// для сервиса коммуникаций (рассылка уведомлений - вне зоны
// ответственности этого сервиса, мы только производим события).
package queue

// Имена очередей (routing key = имя очереди, default exchange)
const (
	QueueReservationConfirmed = "reservation.confirmed"
	QueueRequestApproved      = "approval.approved"
	QueueRequestRejected      = "approval.rejected"
)

// ReservationConfirmedEvent публикуется, когда бронирование помещения
// становится подтверждённым (сразу при создании или после согласования)
type ReservationConfirmedEvent struct {
	EventID       string `json:"eventId"`
	ReservationID int64  `json:"reservationId"`
	FacilityID    int64  `json:"facilityId"`
	FacilityName  string `json:"facilityName"`
	Date          string `json:"date"`      // YYYY-MM-DD
	StartTime     string `json:"startTime"` // HH:MM
	EndTime       string `json:"endTime"`   // HH:MM
	EventTitle    string `json:"eventTitle"`
	CreatedBy     int64  `json:"createdBy"`
	ConfirmedAt   string `json:"confirmedAt"` // RFC3339
}

// RequestApprovedEvent публикуется при одобрении запроса на согласование
type RequestApprovedEvent struct {
	EventID     string  `json:"eventId"`
	RequestID   int64   `json:"requestId"`
	RequestType string  `json:"requestType"`
	Title       string  `json:"title"`
	RequestedBy int64   `json:"requestedBy"`
	ReviewedBy  int64   `json:"reviewedBy"`
	Comments    *string `json:"comments,omitempty"`
	ReviewedAt  string  `json:"reviewedAt"` // RFC3339
}

// RequestRejectedEvent публикуется при отклонении запроса на согласование.
// Comments обязателен: отклонение без причины не проходит валидацию.
type RequestRejectedEvent struct {
	EventID     string `json:"eventId"`
	RequestID   int64  `json:"requestId"`
	RequestType string `json:"requestType"`
	Title       string `json:"title"`
	RequestedBy int64  `json:"requestedBy"`
	ReviewedBy  int64  `json:"reviewedBy"`
	Comments    string `json:"comments"`
	ReviewedAt  string `json:"reviewedAt"` // RFC3339
}
