package approvals

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос на согласование не найден
	ErrRequestNotFound = errors.New("approvals: approval request not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approvals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("approvals: internal error")
)
