package request_equipment

import "time"

// Line одна позиция корзины: сколько единиц какого инвентаря нужно
type Line struct {
	EquipmentID int64
	Quantity    int
}

// Request модель запроса инвентаря: корзина позиций одного события
type Request struct {
	Items       []Line  // Позиции корзины
	RequestedBy int64   // ID пользователя, запрашивающего инвентарь
	EventTitle  string  // Название события, под которое берётся инвентарь
	Notes       *string // Заметки (опционально)

	// RequiresApproval true, когда владеющее событие проходит согласование.
	// У позиций инвентаря собственного флага нет - согласование привязано
	// к событию, а не к предмету.
	RequiresApproval bool
}

// AllocationResult созданная аллокация в ответе
type AllocationResult struct {
	ID          int64
	EquipmentID int64
	Quantity    int
	Status      string
}

// Response модель ответа с созданным запросом инвентаря
type Response struct {
	RequestID   int64              // ID созданного запроса
	Status      string             // confirmed или pending_approval
	Allocations []AllocationResult // Аллокации по позициям корзины

	// ApprovalRequestID заполняется для запросов, ушедших на согласование
	ApprovalRequestID *int64

	CreatedAt time.Time
}
