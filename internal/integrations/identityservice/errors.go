package identityservice

import "errors"

var (
	// ErrReviewerNotFound возвращается, когда пользователь не найден в IdentityService
	ErrReviewerNotFound = errors.New("identityservice: reviewer not found")

	// ErrNotAuthorized возвращается, когда у пользователя нет права согласовывать
	// запросы данного типа
	ErrNotAuthorized = errors.New("identityservice: reviewer is not authorized to approve")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("identityservice: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice: internal error")
)
