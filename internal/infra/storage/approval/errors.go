package approval

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос на согласование не найден
	ErrRequestNotFound = errors.New("approval.repository: approval request not found")

	// ErrAlreadyResolved возвращается при попытке повторной резолюции:
	// запрос уже в терминальном статусе
	ErrAlreadyResolved = errors.New("approval.repository: approval request already resolved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("approval.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("approval.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("approval.repository: failed to scan row")
)
