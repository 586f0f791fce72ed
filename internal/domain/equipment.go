package domain

import "time"

// EquipmentItem represents a countable shared asset with a finite quantity pool.
// AvailableQuantity is a maintained counter: it always equals Quantity minus
// the sum of quantities of all active (confirmed or pending) allocations,
// and stays within [0, Quantity]. It is only ever mutated through the
// equipment repository inside a transaction, never written directly.
type EquipmentItem struct {
	ID                int64
	Name              string
	Category          string
	Quantity          int
	AvailableQuantity int
	StorageLocation   string
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsAvailable returns true if at least the requested quantity is free
func (e *EquipmentItem) IsAvailable(quantity int) bool {
	return quantity > 0 && quantity <= e.AvailableQuantity
}

// EquipmentFilter фильтр для поиска инвентаря в каталоге.
// Категория - основной ключ поиска (самый частый запрос каталога).
type EquipmentFilter struct {
	Category *string // Фильтр по категории (опционально)
}
