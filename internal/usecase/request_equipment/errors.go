package request_equipment

import (
	"errors"
	"fmt"
)

var (
	// ErrEquipmentNotFound возвращается, когда позиция инвентаря не найдена
	ErrEquipmentNotFound = errors.New("request_equipment: equipment item not found")

	// ErrInsufficientQuantity возвращается, когда запрошено больше, чем доступно
	ErrInsufficientQuantity = errors.New("request_equipment: insufficient quantity")

	// ErrDuplicateLine возвращается, когда в корзине две позиции одного предмета
	ErrDuplicateLine = errors.New("request_equipment: duplicate equipment line in cart")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_equipment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_equipment: internal error")
)

// InsufficientQuantityError описывает позицию корзины, не прошедшую
// проверку доступности. Клиенту возвращаются запрошенное и доступное
// количества, чтобы он мог скорректировать корзину.
type InsufficientQuantityError struct {
	EquipmentID int64
	Requested   int
	Available   int
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf("request_equipment: insufficient quantity for equipment id=%d: requested %d, available %d",
		e.EquipmentID, e.Requested, e.Available)
}

// Is позволяет errors.Is(err, ErrInsufficientQuantity) для типизированной ошибки
func (e *InsufficientQuantityError) Is(target error) bool {
	return target == ErrInsufficientQuantity
}
