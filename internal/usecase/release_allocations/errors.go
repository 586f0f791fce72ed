package release_allocations

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос инвентаря не найден
	ErrRequestNotFound = errors.New("release_allocations: allocation request not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_allocations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_allocations: internal error")
)
