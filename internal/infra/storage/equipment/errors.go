package equipment

import "errors"

var (
	// ErrItemNotFound возвращается, когда позиция инвентаря не найдена
	ErrItemNotFound = errors.New("equipment.repository: equipment item not found")

	// ErrQuantityConflict возвращается, когда изменение счётчика доступности
	// нарушило бы инвариант 0 <= available_quantity <= quantity
	ErrQuantityConflict = errors.New("equipment.repository: available quantity out of range")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("equipment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("equipment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("equipment.repository: failed to scan row")
)
