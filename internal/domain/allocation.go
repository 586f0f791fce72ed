package domain

import "time"

// AllocationStatus represents the status of an equipment allocation.
// Both confirmed and pending allocations hold quantity against the item's
// pool; released allocations have returned it.
type AllocationStatus string

const (
	AllocationConfirmed       AllocationStatus = "confirmed"
	AllocationPendingApproval AllocationStatus = "pending_approval"
	AllocationReleased        AllocationStatus = "released"
)

// EquipmentAllocation represents a claim on some quantity of an equipment item.
// Allocations are grouped under a single multi-item request (RequestID).
type EquipmentAllocation struct {
	ID          int64
	RequestID   int64
	EquipmentID int64
	Quantity    int
	Status      AllocationStatus

	ReleasedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true while the allocation holds quantity
func (a *EquipmentAllocation) IsActive() bool {
	return a.Status == AllocationConfirmed || a.Status == AllocationPendingApproval
}

// AllocationLine одна позиция корзины запроса инвентаря
type AllocationLine struct {
	EquipmentID int64
	Quantity    int
}

// AllocationRequest заголовок мультипозиционного запроса инвентаря
type AllocationRequest struct {
	ID          int64
	RequestedBy int64
	EventTitle  string
	Notes       *string
	Status      AllocationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
