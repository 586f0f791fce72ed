package domain

import "time"

// ApprovalStatus represents the state of an approval request.
// Pending is the only non-terminal state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// RequestType discriminates what an approval request gates.
// Handling is exhaustive at the point where approval effects are applied:
// room requests commit a reservation, equipment requests commit allocations,
// event requests carry no resource side effects of their own.
type RequestType string

const (
	RequestTypeEvent     RequestType = "event"
	RequestTypeRoom      RequestType = "room"
	RequestTypeEquipment RequestType = "equipment"
)

// Priority of an approval request in the review queue
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ApprovalRequest gates a reservation or allocation that requires sign-off.
// Exactly one of ReservationID / AllocationRequestID is set for room and
// equipment requests respectively; both are nil for event requests.
type ApprovalRequest struct {
	ID          int64
	Type        RequestType
	Title       string
	Description string
	Priority    Priority
	RequestedBy int64
	RequestedAt time.Time
	Status      ApprovalStatus

	ReservationID       *int64
	AllocationRequestID *int64

	ReviewedBy *int64
	ReviewedAt *time.Time
	Comments   *string
}

// IsPending returns true if the request can still be resolved
func (r *ApprovalRequest) IsPending() bool {
	return r.Status == ApprovalPending
}

// IsResolved returns true once the request reached a terminal state
func (r *ApprovalRequest) IsResolved() bool {
	return r.Status == ApprovalApproved || r.Status == ApprovalRejected
}

// ValidRequestType returns true for a known request type
func ValidRequestType(t RequestType) bool {
	switch t {
	case RequestTypeEvent, RequestTypeRoom, RequestTypeEquipment:
		return true
	default:
		return false
	}
}

// ValidPriority returns true for a known priority
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// ApprovalFilter фильтр очереди согласования
type ApprovalFilter struct {
	Status *ApprovalStatus // Фильтр по статусу (опционально)
	Type   *RequestType    // Фильтр по типу запроса (опционально)
}
