package resolve_approval

import "time"

// Action действие ревьюера над запросом
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Request модель запроса на резолюцию согласования
type Request struct {
	ApprovalID int64   // ID запроса на согласование
	ReviewerID int64   // ID ревьюера
	Action     Action  // approve или reject
	Comment    *string // Комментарий: обязателен при reject, опционален при approve
}

// Response модель ответа с резолюцией
type Response struct {
	ID          int64      // ID запроса на согласование
	Type        string     // event, room или equipment
	Status      string     // approved или rejected
	ReviewedBy  int64      // ID ревьюера
	ReviewedAt  *time.Time // Время резолюции
	Comments    *string    // Комментарий ревьюера
	RequestedBy int64      // ID автора запроса

	// ReservationID / AllocationRequestID идентифицируют зафиксированный
	// (или отброшенный) ресурс, если он есть
	ReservationID       *int64
	AllocationRequestID *int64
}
