package domain

// Time format constants
const (
	TimeFormat      = "15:04"                // HH:MM
	DateFormat      = "2006-01-02"           // YYYY-MM-DD
	TimestampFormat = "2006-01-02T15:04:05Z" // RFC3339 UTC, для событий
)

// Business validation constants
const (
	MaxEventTitleLength   = 200
	MaxNotesLength        = 500
	MaxCommentLength      = 1000
	MaxCartLines          = 50
	MaxAllocationQuantity = 10000
)

// ActiveAllocationStatuses статусы аллокаций, удерживающих количество.
// Используется при пересчёте и проверке доступности инвентаря.
var ActiveAllocationStatuses = []AllocationStatus{
	AllocationConfirmed,
	AllocationPendingApproval,
}
